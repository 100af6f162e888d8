package game

import (
	"github.com/go-gl/mathgl/mgl32"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/stardrift/internal/input"
	"github.com/san-kum/stardrift/internal/scene"
)

var win = input.WindowSize{Width: 800, Height: 600}

var _ = Describe("Session", func() {
	Describe("drifting toward a heavy body", func() {
		var (
			sess *Session
			body mgl32.Vec3
		)

		BeforeEach(func() {
			body = mgl32.Vec3{0, 0, -10}
			sc := testScene(mgl32.Vec3{0, 0, 50}, map[string]mgl32.Vec3{scene.HeavyName(0): body})
			var err error
			sess, err = New(sc, WithSeed(1))
			Expect(err).NotTo(HaveOccurred())
		})

		It("closes on the body every frame and never escapes", func() {
			cam := sess.Camera().Transform
			last := cam.Position.Sub(body).Len()
			Expect(last).To(BeNumerically("~", 60, 1e-4))

			for i := 0; i < 100; i++ {
				sess.Update(0.1)
				Expect(sess.Escaped()).To(BeFalse())
				if sess.Crashed() {
					break
				}
				d := cam.Position.Sub(body).Len()
				Expect(d).To(BeNumerically("<", last))
				last = d
			}
			Expect(sess.Dominant()).NotTo(BeNil())
			Expect(sess.Dominant().Name).To(Equal(scene.HeavyName(0)))
		})

		It("keeps every distance floored at one", func() {
			for i := 0; i < 100; i++ {
				sess.Update(0.1)
				for _, b := range sess.Bodies().Bodies {
					Expect(b.R).To(BeNumerically(">=", 1.0))
				}
			}
		})
	})

	Describe("leaving the field", func() {
		It("sets escape past 190 units and keeps it until restart", func() {
			sc := testScene(mgl32.Vec3{200, 0, 0}, map[string]mgl32.Vec3{scene.HeavyName(0): {150, 0, 0}})
			sess, err := New(sc, WithSeed(1))
			Expect(err).NotTo(HaveOccurred())

			sess.Update(0.016)
			Expect(sess.Escaped()).To(BeTrue())

			for i := 0; i < 30; i++ {
				sess.Update(0.016)
				Expect(sess.Escaped()).To(BeTrue())
			}

			sess.Restart()
			Expect(sess.Escaped()).To(BeFalse())
			Expect(sess.Camera().Transform.Position).To(Equal(mgl32.Vec3{200, 0, 0}))
		})
	})

	Describe("flying into a light body", func() {
		var sess *Session

		BeforeEach(func() {
			sc := testScene(mgl32.Vec3{0, 0, 50}, map[string]mgl32.Vec3{scene.LightName(0): {0, 0, 50.5}})
			var err error
			sess, err = New(sc, WithSeed(1))
			Expect(err).NotTo(HaveOccurred())
		})

		It("crashes on the first frame and then freezes", func() {
			sess.Update(0.016)
			Expect(sess.Crashed()).To(BeTrue())
			Expect(sess.State()).To(Equal(Crashed))

			cam := sess.Camera().Transform.Position
			craft := sess.Craft().Position
			rot := sess.Camera().Transform.Rotation
			for i := 0; i < 10; i++ {
				sess.Update(0.016)
			}
			Expect(sess.Camera().Transform.Position).To(Equal(cam))
			Expect(sess.Camera().Transform.Rotation).To(Equal(rot))
			Expect(sess.Craft().Position).To(Equal(craft))
			Expect(sess.Crashed()).To(BeTrue())
		})

		It("restarts from the start position on the R key", func() {
			sess.Update(0.016)
			Expect(sess.Crashed()).To(BeTrue())

			handled := sess.HandleEvent(input.Event{Type: input.KeyDown, Key: input.KeyR}, win)
			Expect(handled).To(BeTrue())
			Expect(sess.Crashed()).To(BeFalse())
			Expect(sess.Camera().Transform.Position).To(Equal(sess.StartPosition()))
			Expect(sess.Input().Restart.Downs).To(Equal(1))

			sess.Update(0.016)
			Expect(sess.Input().Restart.Downs).To(BeZero())
		})

		It("ignores mouse look while crashed", func() {
			sess.HandleEvent(input.Event{Type: input.MouseButtonDown}, win)
			sess.Update(0.016)
			rot := sess.Camera().Transform.Rotation
			Expect(sess.HandleEvent(input.Event{Type: input.MouseMotion, XRel: 40}, win)).To(BeFalse())
			Expect(sess.Camera().Transform.Rotation).To(Equal(rot))
		})
	})

	Describe("a scene with no bodies", func() {
		It("flies without numerical faults", func() {
			sess, err := New(testScene(mgl32.Vec3{0, 0, 50}, nil), WithSeed(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(sess.Bodies().ActiveCount()).To(BeZero())

			sess.HandleEvent(input.Event{Type: input.KeyDown, Key: input.KeyW}, win)
			for i := 0; i < 200; i++ {
				sess.Update(0.05)
				Expect(finite(sess.Camera().Transform.Position)).To(BeTrue())
				Expect(finiteQuat(sess.Camera().Transform.Rotation)).To(BeTrue())
			}
			Expect(sess.Dominant()).To(BeNil())
			Expect(sess.Crashed()).To(BeFalse())
			// 10 seconds at full speed straight down -Z crosses the boundary.
			Expect(sess.Escaped()).To(BeTrue())
		})

		It("fails construction in strict mode", func() {
			_, err := New(testScene(mgl32.Vec3{}, nil), WithStrict(true))
			Expect(err).To(MatchError(ErrBodyMissing))
			var missing *MissingBodiesError
			Expect(err).To(BeAssignableToTypeOf(missing))
		})
	})

	Describe("Restart", func() {
		It("is idempotent", func() {
			sc := testScene(mgl32.Vec3{0, 0, 50}, map[string]mgl32.Vec3{scene.LightName(0): {0, 0, 50.5}})
			sess, err := New(sc, WithSeed(1))
			Expect(err).NotTo(HaveOccurred())
			sess.Camera().Transform.Position = mgl32.Vec3{250, 0, 0}
			sess.Update(0.016)

			for i := 0; i < 3; i++ {
				sess.Restart()
				Expect(sess.Crashed()).To(BeFalse())
				Expect(sess.Escaped()).To(BeFalse())
				Expect(sess.State()).To(Equal(Flying))
				Expect(sess.Camera().Transform.Position).To(Equal(mgl32.Vec3{0, 0, 50}))
			}
		})

		It("does not rewind time", func() {
			sess, err := New(testScene(mgl32.Vec3{0, 0, 50}, nil), WithSeed(1))
			Expect(err).NotTo(HaveOccurred())
			sess.Update(0.5)
			sess.Restart()
			Expect(sess.Time()).To(BeNumerically("~", 0.5, 1e-6))
		})
	})
})
