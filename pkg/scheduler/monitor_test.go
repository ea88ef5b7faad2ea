package scheduler_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/audiobook-scanner/pkg/scheduler"
)

var _ = Describe("ThroughputMonitor", func() {
	// Given five completions
	// When throughput is measured right away and again after a second
	// Then the first measurement is 0 and the second one is positive
	It("should ignore windows shorter than a second", func() {
		m := scheduler.NewThroughputMonitor()
		for range 5 {
			m.RecordCompletion()
		}

		Expect(m.MeasureThroughput()).To(Equal(0.0))
		Expect(m.Samples()).To(BeEmpty())

		time.Sleep(1100 * time.Millisecond)

		Expect(m.MeasureThroughput()).To(BeNumerically(">", 0))
		Expect(m.Samples()).To(HaveLen(1))
	})

	It("should report zero average without samples", func() {
		Expect(scheduler.NewThroughputMonitor().AverageThroughput()).To(Equal(0.0))
	})
})
