package handlers_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/tupyy/audiobook-scanner/api/v1"
	"github.com/tupyy/audiobook-scanner/internal/extractor"
	"github.com/tupyy/audiobook-scanner/internal/handlers"
	"github.com/tupyy/audiobook-scanner/internal/models"
	"github.com/tupyy/audiobook-scanner/internal/services"
	"github.com/tupyy/audiobook-scanner/internal/store"
	"github.com/tupyy/audiobook-scanner/pkg/scheduler"
)

func pathExtract(_ context.Context, libraryID, path string) (*models.Audiobook, error) {
	return &models.Audiobook{
		ID:         extractor.ID(libraryID, path),
		LibraryID:  libraryID,
		Path:       path,
		Title:      strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Author:     filepath.Base(filepath.Dir(path)),
		Format:     strings.TrimPrefix(filepath.Ext(path), "."),
		ModifiedAt: time.Now().UTC(),
		ScannedAt:  time.Now().UTC(),
	}, nil
}

var _ = Describe("Handler", func() {
	var (
		ctx     context.Context
		db      *sql.DB
		st      *store.Store
		scanSrv *services.ScanService
		router  *gin.Engine
		root    string
	)

	do := func(method, target string, body any) *httptest.ResponseRecorder {
		var reader *bytes.Reader
		if body != nil {
			data, err := json.Marshal(body)
			Expect(err).NotTo(HaveOccurred())
			reader = bytes.NewReader(data)
		} else {
			reader = bytes.NewReader(nil)
		}
		req := httptest.NewRequest(method, target, reader)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		ctx = context.Background()
		root = GinkgoT().TempDir()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())
		st = store.NewStore(db)
		Expect(st.Migrate(ctx)).To(Succeed())

		scanSrv = services.NewScanService(st, pathExtract, services.ScanOptions{
			Pool: scheduler.PoolConfig{
				WorkerCount:        2,
				MaxQueueSize:       50,
				WorkerTimeout:      50 * time.Millisecond,
				MonitoringInterval: 20 * time.Millisecond,
			},
			BatchSize: 10,
		})
		h := handlers.New(scanSrv, services.NewAudiobookService(st))

		router = gin.New()
		v1.RegisterHandlers(router.Group("/api/v1"), h)
	})

	AfterEach(func() {
		scanSrv.Stop()
		db.Close()
	})

	Context("scan", func() {
		It("should report the ready state before any scan", func() {
			w := do(http.MethodGet, "/api/v1/scan", nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			var status v1.ScanStatus
			Expect(json.Unmarshal(w.Body.Bytes(), &status)).To(Succeed())
			Expect(status.State).To(Equal(v1.ScanStatusStateReady))
			Expect(status.LibraryId).To(BeNil())
			Expect(status.Progress.Percentage).To(Equal(100.0))
		})

		It("should reject a request without a path", func() {
			w := do(http.MethodPost, "/api/v1/scan", v1.StartScanRequest{LibraryId: "main"})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/scan", strings.NewReader("{"))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject a library path that does not exist", func() {
			w := do(http.MethodPost, "/api/v1/scan", v1.StartScanRequest{LibraryId: "main", Path: filepath.Join(root, "nope")})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should scan a library and list its audiobooks", func() {
			// Given a library with two books
			for _, name := range []string{"Frank Herbert/Dune.m4b", "Isaac Asimov/Foundation.mp3"} {
				path := filepath.Join(root, name)
				Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
				Expect(os.WriteFile(path, []byte("audio"), 0o600)).To(Succeed())
			}

			// When a scan is started
			w := do(http.MethodPost, "/api/v1/scan", v1.StartScanRequest{LibraryId: "main", Path: root})
			Expect(w.Code).To(Equal(http.StatusAccepted))

			// Then it completes
			Eventually(func() v1.ScanStatusState {
				var status v1.ScanStatus
				Expect(json.Unmarshal(do(http.MethodGet, "/api/v1/scan", nil).Body.Bytes(), &status)).To(Succeed())
				return status.State
			}).WithTimeout(5 * time.Second).Should(Equal(v1.ScanStatusStateCompleted))

			// And the books are listed
			w = do(http.MethodGet, "/api/v1/audiobooks?library=main&sort=title:desc", nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			var list v1.AudiobookListResponse
			Expect(json.Unmarshal(w.Body.Bytes(), &list)).To(Succeed())
			Expect(list.Total).To(Equal(2))
			Expect(list.Page).To(Equal(1))
			Expect(list.PageCount).To(Equal(1))
			Expect(list.Audiobooks).To(HaveLen(2))
			Expect(list.Audiobooks[0].Title).To(Equal("Foundation"))
			Expect(list.Audiobooks[1].Title).To(Equal("Dune"))

			// And a single book can be fetched
			w = do(http.MethodGet, "/api/v1/audiobooks/"+list.Audiobooks[1].Id.String(), nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			var book v1.Audiobook
			Expect(json.Unmarshal(w.Body.Bytes(), &book)).To(Succeed())
			Expect(book.Author).To(Equal("Frank Herbert"))
			Expect(book.Format).To(Equal("m4b"))
		})

		It("should list no scan errors for a clean library", func() {
			w := do(http.MethodGet, "/api/v1/scan/errors?library=main", nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp v1.ScanErrorListResponse
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Errors).To(BeEmpty())
		})

		It("should require a library for scan errors", func() {
			w := do(http.MethodGet, "/api/v1/scan/errors", nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should stop idempotently", func() {
			w := do(http.MethodDelete, "/api/v1/scan", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
		})
	})

	Context("audiobooks", func() {
		It("should paginate with page and pageSize", func() {
			for i, title := range []string{"A", "B", "C"} {
				path := "/lib/author/" + title + ".mp3"
				Expect(st.Audiobook().Upsert(ctx, &models.Audiobook{
					ID:         extractor.ID("lib", path),
					LibraryID:  "lib",
					Path:       path,
					Title:      title,
					Author:     "author",
					Format:     "mp3",
					Track:      i + 1,
					ModifiedAt: time.Now().UTC(),
					ScannedAt:  time.Now().UTC(),
				})).To(Succeed())
			}

			w := do(http.MethodGet, "/api/v1/audiobooks?page=2&pageSize=2", nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			var list v1.AudiobookListResponse
			Expect(json.Unmarshal(w.Body.Bytes(), &list)).To(Succeed())
			Expect(list.Total).To(Equal(3))
			Expect(list.PageCount).To(Equal(2))
			Expect(list.Page).To(Equal(2))
			Expect(list.Audiobooks).To(HaveLen(1))
			Expect(list.Audiobooks[0].Title).To(Equal("C"))
		})

		It("should return 404 for an unknown audiobook", func() {
			w := do(http.MethodGet, "/api/v1/audiobooks/"+uuid.NewString(), nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("should return 400 for an invalid id", func() {
			w := do(http.MethodGet, "/api/v1/audiobooks/not-a-uuid", nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return an empty page for a huge page number", func() {
			w := do(http.MethodGet, "/api/v1/audiobooks?page=9223372036854775807&pageSize=100", nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			var list v1.AudiobookListResponse
			Expect(json.Unmarshal(w.Body.Bytes(), &list)).To(Succeed())
			Expect(list.Audiobooks).To(BeEmpty())
			Expect(list.Page).To(Equal(math.MaxInt32))
		})

		It("should return 400 for a non numeric page", func() {
			w := do(http.MethodGet, "/api/v1/audiobooks?page=abc", nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
