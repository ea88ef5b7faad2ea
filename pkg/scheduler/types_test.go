package scheduler_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/audiobook-scanner/pkg/scheduler"
)

var _ = Describe("Task", func() {
	It("should assign priorities from the constructors", func() {
		Expect(scheduler.NewTask("/a.mp3", "lib").Priority).To(Equal(uint8(5)))
		Expect(scheduler.NewHighPriorityTask("/a.mp3", "lib").Priority).To(Equal(uint8(10)))
		Expect(scheduler.NewLowPriorityTask("/a.mp3", "lib").Priority).To(Equal(uint8(1)))
	})

	It("should stamp id and enqueue time", func() {
		t1 := scheduler.NewTask("/a.mp3", "lib")
		t2 := scheduler.NewTask("/a.mp3", "lib")

		Expect(t1.ID).NotTo(Equal(t2.ID))
		Expect(t1.EnqueuedAt).NotTo(BeZero())
		Expect(t1.CollectionID).To(Equal("lib"))
	})

	It("should not modify the original task when changing priority", func() {
		t := scheduler.NewTask("/a.mp3", "lib")
		high := t.WithPriority(200)

		Expect(high.Priority).To(Equal(uint8(200)))
		Expect(t.Priority).To(Equal(uint8(5)))
	})
})

var _ = Describe("Progress", func() {
	It("should report an empty pool as fully done but not complete", func() {
		p := scheduler.Progress{}
		Expect(p.CompletionPercentage()).To(Equal(1.0))
		Expect(p.IsComplete()).To(BeFalse())
	})

	It("should compute completion", func() {
		p := scheduler.Progress{Total: 4, Completed: 1, Successful: 1}
		Expect(p.CompletionPercentage()).To(Equal(0.25))
		Expect(p.IsComplete()).To(BeFalse())
		Expect(p.Remaining()).To(Equal(3))

		p = scheduler.Progress{Total: 4, Completed: 4, Successful: 3, Failed: 1}
		Expect(p.IsComplete()).To(BeTrue())
		Expect(p.CompletionPercentage()).To(Equal(1.0))
	})

	It("should clamp the percentage", func() {
		p := scheduler.Progress{Total: 2, Completed: 5}
		Expect(p.CompletionPercentage()).To(Equal(1.0))
		Expect(p.Remaining()).To(Equal(0))
	})
})
