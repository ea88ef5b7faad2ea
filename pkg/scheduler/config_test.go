package scheduler_test

import (
	"runtime"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/audiobook-scanner/pkg/scheduler"
)

var _ = Describe("PoolConfig", func() {
	Context("presets", func() {
		It("should size the io heavy preset at twice the cpu count", func() {
			Expect(scheduler.IOHeavyPoolConfig().WorkerCount).To(Equal(2 * runtime.NumCPU()))
		})

		It("should order presets by worker count", func() {
			io := scheduler.IOHeavyPoolConfig()
			cpu := scheduler.CPUHeavyPoolConfig()
			conservative := scheduler.ConservativePoolConfig()

			Expect(io.WorkerCount).To(BeNumerically(">=", cpu.WorkerCount))
			Expect(conservative.WorkerCount).To(BeNumerically("<=", cpu.WorkerCount))
			Expect(conservative.WorkerCount).To(BeNumerically(">=", 1))
		})

		It("should produce valid configurations", func() {
			for _, name := range []string{"", scheduler.PresetDefault, scheduler.PresetIOHeavy, scheduler.PresetCPUHeavy, scheduler.PresetConservative} {
				cfg, err := scheduler.PresetConfig(name)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Validate()).To(Succeed(), "preset %q", name)
			}
		})

		It("should reject unknown presets", func() {
			_, err := scheduler.PresetConfig("turbo")
			Expect(err).To(MatchError(scheduler.ErrInvalidConfig))
		})
	})

	Context("Validate", func() {
		var cfg scheduler.PoolConfig

		BeforeEach(func() {
			cfg = scheduler.DefaultPoolConfig()
		})

		It("should reject a zero worker count", func() {
			cfg.WorkerCount = 0
			Expect(cfg.Validate()).To(MatchError(scheduler.ErrInvalidConfig))
		})

		It("should reject a zero queue size", func() {
			cfg.MaxQueueSize = 0
			Expect(cfg.Validate()).To(MatchError(scheduler.ErrInvalidConfig))
		})

		It("should reject non positive durations", func() {
			cfg.WorkerTimeout = 0
			Expect(cfg.Validate()).To(MatchError(scheduler.ErrInvalidConfig))

			cfg = scheduler.DefaultPoolConfig()
			cfg.MonitoringInterval = -time.Second
			Expect(cfg.Validate()).To(MatchError(scheduler.ErrInvalidConfig))
		})

		It("should check thread bounds only when adaptive scaling is enabled", func() {
			cfg.MinThreads = 8
			cfg.MaxThreads = 2
			Expect(cfg.Validate()).To(Succeed())

			cfg.AdaptiveScaling = true
			Expect(cfg.Validate()).To(MatchError(scheduler.ErrInvalidConfig))
		})
	})

	Context("ParseOrdering", func() {
		It("should parse known orderings", func() {
			o, err := scheduler.ParseOrdering("global")
			Expect(err).NotTo(HaveOccurred())
			Expect(o).To(Equal(scheduler.OrderingGlobal))

			o, err = scheduler.ParseOrdering("")
			Expect(err).NotTo(HaveOccurred())
			Expect(o).To(Equal(scheduler.OrderingBatch))

			_, err = scheduler.ParseOrdering("random")
			Expect(err).To(HaveOccurred())
		})
	})
})
