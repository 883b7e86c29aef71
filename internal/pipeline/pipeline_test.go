package pipeline_test

import (
	"bytes"
	"math"

	"github.com/charmbracelet/log"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/efield/internal/config"
	"github.com/san-kum/efield/internal/pipeline"
)

var _ = Describe("FieldDirect", func() {
	var cfg *config.Config

	BeforeEach(func() {
		cfg = config.DefaultConfig()
	})

	It("produces finite 64x64 arrays for the reference dipole", func() {
		res, err := pipeline.FieldDirect(cfg, nil)
		Expect(err).NotTo(HaveOccurred())

		r, c := res.Ex.Dims()
		Expect(r).To(Equal(64))
		Expect(c).To(Equal(64))
		Expect(res.NonFinite()).To(BeZero())
		Expect(res.Charges).To(HaveLen(2))
		Expect(res.Charges[0].X).To(BeNumerically("~", 1, 1e-12))
		Expect(res.View).To(Equal(pipeline.View{Min: -3, Max: 3}))
	})

	It("yields a zero field without charges", func() {
		cfg.NQ = 0
		res, err := pipeline.FieldDirect(cfg, nil)
		Expect(err).NotTo(HaveOccurred())

		r, c := res.Ex.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				Expect(res.Ex.At(i, j)).To(BeZero())
				Expect(res.Ey.At(i, j)).To(BeZero())
				Expect(math.IsInf(res.Color.At(i, j), -1)).To(BeTrue())
			}
		}
	})

	It("reports invalid grids", func() {
		cfg.Grid.NX = 1
		_, err := pipeline.FieldDirect(cfg, nil)
		Expect(err).To(MatchError(ContainSubstring("field pipeline")))
	})

	It("logs one line per run", func() {
		var buf bytes.Buffer
		logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})

		_, err := pipeline.FieldDirect(cfg, logger)
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(ContainSubstring("pipeline finished"))
		Expect(buf.String()).To(ContainSubstring("charges=2"))
		Expect(buf.String()).To(ContainSubstring("net=0"))
	})
})

var _ = Describe("PotentialGradient", func() {
	It("places charges with the sin,cos variant and a narrower view", func() {
		res, err := pipeline.PotentialGradient(config.DefaultConfig(), nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(res.Charges[0].X).To(BeNumerically("~", 0, 1e-12))
		Expect(res.Charges[0].Y).To(BeNumerically("~", 1, 1e-12))
		Expect(res.View).To(Equal(pipeline.View{Min: -2, Max: 2}))
		Expect(res.Potential).NotTo(BeNil())
		Expect(res.Title).To(Equal("E = -grad V"))
	})

	It("agrees in direction with the direct field away from the charges", func() {
		cfg := config.DefaultConfig()
		cfg.Field.Placement = cfg.Potential.Placement

		direct, err := pipeline.FieldDirect(cfg, nil)
		Expect(err).NotTo(HaveOccurred())
		derived, err := pipeline.PotentialGradient(cfg, nil)
		Expect(err).NotTo(HaveOccurred())

		dx, _ := direct.Grid.Spacing()
		r, c := direct.Ex.Dims()
		checked := 0
		for i := 1; i < r-1; i++ {
			for j := 1; j < c-1; j++ {
				x, y := direct.Grid.X[j], direct.Grid.Y[i]
				near := false
				for _, q := range direct.Charges {
					if math.Hypot(x-q.X, y-q.Y) < 0.6 {
						near = true
					}
				}
				if near {
					continue
				}

				ax, ay := direct.Ex.At(i, j), direct.Ey.At(i, j)
				bx, by := derived.Ex.At(i, j), derived.Ey.At(i, j)
				na, nb := math.Hypot(ax, ay), math.Hypot(bx, by)

				Expect((ax*bx + ay*by) / (na * nb)).To(BeNumerically(">", 0.99))
				Expect(nb / na).To(BeNumerically("~", dx, 0.1*dx))
				checked++
			}
		}
		Expect(checked).To(BeNumerically(">", 1000))
	})
})

var _ = Describe("Registry", func() {
	It("runs both pipelines in order", func() {
		reg := pipeline.NewRegistry()
		Expect(reg.Names()).To(Equal([]string{pipeline.NameField, pipeline.NamePotential}))

		results, err := reg.RunAll(config.DefaultConfig(), nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(2))
		Expect(results[0].Name).To(Equal(pipeline.NameField))
		Expect(results[1].Name).To(Equal(pipeline.NamePotential))
	})

	It("rejects unknown names", func() {
		_, err := pipeline.NewRegistry().Get("magnetic")
		Expect(err).To(MatchError(pipeline.ErrUnknownPipeline))
	})

	It("stops at the first failing pipeline", func() {
		cfg := config.DefaultConfig()
		cfg.Potential.Placement = "polar"

		_, err := pipeline.NewRegistry().RunAll(cfg, nil)
		Expect(err).To(MatchError(ContainSubstring("potential pipeline")))
	})
})
