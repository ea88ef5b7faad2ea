package store_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/audiobook-scanner/internal/models"
	"github.com/tupyy/audiobook-scanner/internal/store"
	srvErrors "github.com/tupyy/audiobook-scanner/pkg/errors"
)

func newBook(library, author, title, format string, scannedAt time.Time) *models.Audiobook {
	path := fmt.Sprintf("/%s/%s/%s.%s", library, author, title, format)
	return &models.Audiobook{
		ID:         uuid.NewSHA1(uuid.NameSpaceURL, []byte(path)),
		LibraryID:  library,
		Path:       path,
		Title:      title,
		Author:     author,
		Format:     format,
		Year:       1965,
		SizeBytes:  1024,
		ModifiedAt: scannedAt.Add(-time.Hour),
		ScannedAt:  scannedAt,
	}
}

var _ = Describe("AudiobookStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
		now time.Time
	)

	BeforeEach(func() {
		ctx = context.Background()
		now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		s = store.NewStore(db)
		Expect(s.Migrate(ctx)).To(Succeed())
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("Get", func() {
		It("should return ResourceNotFoundError for an unknown id", func() {
			_, err := s.Audiobook().Get(ctx, uuid.New())
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should return a saved audiobook", func() {
			book := newBook("lib", "Frank Herbert", "Dune", "m4b", now)
			book.Narrator = "Scott Brick"
			Expect(s.Audiobook().Upsert(ctx, book)).To(Succeed())

			got, err := s.Audiobook().Get(ctx, book.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Title).To(Equal("Dune"))
			Expect(got.Narrator).To(Equal("Scott Brick"))
			Expect(got.Path).To(Equal(book.Path))
			Expect(got.ScannedAt.Equal(now)).To(BeTrue())
		})
	})

	Context("Upsert", func() {
		// Given a stored audiobook
		// When it is saved again with new metadata
		// Then the existing row is updated
		It("should update existing audiobooks", func() {
			book := newBook("lib", "Frank Herbert", "Dune", "m4b", now)
			Expect(s.Audiobook().Upsert(ctx, book)).To(Succeed())

			book.Title = "Dune (Unabridged)"
			Expect(s.Audiobook().Upsert(ctx, book)).To(Succeed())

			count, err := s.Audiobook().Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(1))

			got, err := s.Audiobook().Get(ctx, book.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Title).To(Equal("Dune (Unabridged)"))
		})

		It("should accept an empty call", func() {
			Expect(s.Audiobook().Upsert(ctx)).To(Succeed())
		})
	})

	Context("List", func() {
		BeforeEach(func() {
			Expect(s.Audiobook().Upsert(ctx,
				newBook("lib-a", "Frank Herbert", "Dune", "m4b", now),
				newBook("lib-a", "Frank Herbert", "Children of Dune", "mp3", now),
				newBook("lib-a", "Isaac Asimov", "Foundation", "mp3", now),
				newBook("lib-b", "Ursula K. Le Guin", "Earthsea", "m4b", now),
			)).To(Succeed())
		})

		It("should filter by library", func() {
			books, err := s.Audiobook().List(ctx, store.ByLibrary("lib-a"), store.WithDefaultSort())
			Expect(err).NotTo(HaveOccurred())
			Expect(books).To(HaveLen(3))
			Expect(books[0].Title).To(Equal("Children of Dune"))
		})

		It("should combine filters", func() {
			books, err := s.Audiobook().List(ctx,
				store.ByAuthors("Frank Herbert"),
				store.ByFormats("m4b"),
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(books).To(HaveLen(1))
			Expect(books[0].Title).To(Equal("Dune"))
		})

		It("should match titles ignoring case", func() {
			books, err := s.Audiobook().List(ctx, store.ByTitle("dune"))
			Expect(err).NotTo(HaveOccurred())
			Expect(books).To(HaveLen(2))
		})

		It("should sort and paginate", func() {
			books, err := s.Audiobook().List(ctx,
				store.WithSort([]store.SortParam{{Field: "title", Desc: true}, {Field: "unknown"}}),
				store.WithLimit(2),
				store.WithOffset(1),
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(books).To(HaveLen(2))
			Expect(books[0].Title).To(Equal("Earthsea"))
			Expect(books[1].Title).To(Equal("Dune"))
		})

		It("should count with filters", func() {
			count, err := s.Audiobook().Count(ctx, store.ByFormats("mp3"))
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(2))
		})
	})

	Context("DeleteStale", func() {
		It("should remove audiobooks not seen by the last scan", func() {
			old := newBook("lib", "A", "Old", "mp3", now.Add(-24*time.Hour))
			fresh := newBook("lib", "A", "Fresh", "mp3", now)
			other := newBook("other", "A", "Other", "mp3", now.Add(-24*time.Hour))
			Expect(s.Audiobook().Upsert(ctx, old, fresh, other)).To(Succeed())

			deleted, err := s.Audiobook().DeleteStale(ctx, "lib", now)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(Equal(int64(1)))

			count, err := s.Audiobook().Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(2))
		})
	})

	Context("DeleteByPath", func() {
		It("should remove only the audiobook stored at the path", func() {
			book := newBook("lib", "A", "Gone", "mp3", now)
			keep := newBook("other", "A", "Gone", "mp3", now)
			keep.Path = book.Path
			Expect(s.Audiobook().Upsert(ctx, book, keep)).To(Succeed())

			deleted, err := s.Audiobook().DeleteByPath(ctx, "lib", book.Path)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(Equal(int64(1)))

			_, err = s.Audiobook().Get(ctx, book.ID)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
			_, err = s.Audiobook().Get(ctx, keep.ID)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Context("WithTx", func() {
		It("should roll back on error", func() {
			boom := errors.New("boom")
			err := s.WithTx(ctx, func(tx *store.Store) error {
				Expect(tx.Audiobook().Upsert(ctx, newBook("lib", "A", "T", "mp3", now))).To(Succeed())
				return boom
			})
			Expect(err).To(MatchError(boom))

			count, err := s.Audiobook().Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(0))
		})

		It("should commit on success", func() {
			err := s.WithTx(ctx, func(tx *store.Store) error {
				return tx.Audiobook().Upsert(ctx, newBook("lib", "A", "T", "mp3", now))
			})
			Expect(err).NotTo(HaveOccurred())

			count, err := s.Audiobook().Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(1))
		})
	})
})

var _ = Describe("ScanErrorStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		s = store.NewStore(db)
		Expect(s.Migrate(ctx)).To(Succeed())
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	It("should save, list and delete scan errors per library", func() {
		now := time.Now().UTC().Truncate(time.Second)
		Expect(s.ScanError().Save(ctx,
			models.ScanError{LibraryID: "lib", Path: "/b.mp3", Error: "unreadable", CreatedAt: now},
			models.ScanError{LibraryID: "lib", Path: "/a.mp3", Error: "corrupted", CreatedAt: now},
			models.ScanError{LibraryID: "other", Path: "/c.mp3", Error: "corrupted", CreatedAt: now},
		)).To(Succeed())

		errs, err := s.ScanError().List(ctx, "lib")
		Expect(err).NotTo(HaveOccurred())
		Expect(errs).To(HaveLen(2))
		Expect(errs[0].Path).To(Equal("/a.mp3"))
		Expect(errs[0].Error).To(Equal("corrupted"))

		Expect(s.ScanError().DeleteByLibrary(ctx, "lib")).To(Succeed())
		errs, err = s.ScanError().List(ctx, "lib")
		Expect(err).NotTo(HaveOccurred())
		Expect(errs).To(BeEmpty())

		errs, err = s.ScanError().List(ctx, "other")
		Expect(err).NotTo(HaveOccurred())
		Expect(errs).To(HaveLen(1))
	})
})
