package store

const (
	tableAudiobooks = "audiobooks"
	tableScanErrors = "scan_errors"
)

var audiobookColumns = []string{
	"id",
	"library_id",
	"path",
	"title",
	"author",
	"narrator",
	"album",
	"genre",
	"year",
	"track",
	"format",
	"size_bytes",
	"modified_at",
	"scanned_at",
}

const audiobookUpsertSuffix = `
	ON CONFLICT (id) DO UPDATE SET
		title = EXCLUDED.title,
		author = EXCLUDED.author,
		narrator = EXCLUDED.narrator,
		album = EXCLUDED.album,
		genre = EXCLUDED.genre,
		year = EXCLUDED.year,
		track = EXCLUDED.track,
		format = EXCLUDED.format,
		size_bytes = EXCLUDED.size_bytes,
		modified_at = EXCLUDED.modified_at,
		scanned_at = EXCLUDED.scanned_at`
