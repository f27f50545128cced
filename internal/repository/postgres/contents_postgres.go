package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"contentsapi/internal/apperr"
	"contentsapi/internal/entity"
	"contentsapi/internal/model"
	"contentsapi/internal/repository"
)

// ContentsPostgres persists contents records in a single table keyed by
// ISBN. It uses database/sql with parameterized queries and contains no
// business logic beyond attribute construction.
type ContentsPostgres struct {
	db  *sql.DB
	now func() time.Time
}

// NewContentsPostgres creates the repository. The clock is an injection
// point for tests.
func NewContentsPostgres(db *sql.DB) *ContentsPostgres {
	return &ContentsPostgres{db: db, now: time.Now}
}

var _ repository.ContentsRepository = (*ContentsPostgres)(nil)

const allColumns = `isbn, title, author, date_of_publication, description_short, description_long,
	table_of_contents, promotional, summary, review, image_small, image_large, image_original,
	audio_file, source, modified, created`

// Create inserts a new record. Optional blank fields become NULL; the text
// fields that may carry HTML entities are decoded first when the escape
// guard confirms they are validly encoded.
func (r *ContentsPostgres) Create(ctx context.Context, doc *model.ContentsDocument) error {
	created := r.now().UTC()
	if doc.Created != nil {
		created = doc.Created.UTC()
	}

	q := fmt.Sprintf(`INSERT INTO contents (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`, allColumns)

	res, err := r.db.ExecContext(ctx, q,
		doc.NormalizedISBN(),
		nullIfBlank(doc.Title),
		nullIfBlank(doc.Author),
		nullIfBlank(doc.DateOfPublication),
		unescapedOrNull(doc.DescriptionShort),
		unescapedOrNull(doc.DescriptionLong),
		unescapedOrNull(doc.TableOfContents),
		unescapedOrNull(doc.Promotional),
		unescapedOrNull(doc.Summary),
		unescapedOrNull(doc.Review),
		nullIfBlank(doc.ImageSmall),
		nullIfBlank(doc.ImageLarge),
		nullIfBlank(doc.ImageOriginal),
		nullIfBlank(doc.AudioFile),
		nullIfBlank(doc.Source),
		created,
		created,
	)
	if err != nil {
		return apperr.Communication("store rejected create", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Communication("create acknowledgment unreadable", err)
	}
	if n != 1 {
		return apperr.Communication(fmt.Sprintf("create affected %d rows", n), nil)
	}
	return nil
}

// Find performs a point lookup by ISBN. A missing row, an empty item, and a
// transport failure all come back as not-found; the store does not
// distinguish absent from unreachable at this layer.
func (r *ContentsPostgres) Find(ctx context.Context, isbn string) (*model.ContentsDocument, error) {
	q := fmt.Sprintf(`SELECT %s FROM contents WHERE isbn = $1`, allColumns)
	row := r.db.QueryRowContext(ctx, q, strings.ToUpper(strings.TrimSpace(isbn)))

	var (
		doc      model.ContentsDocument
		title, author, dateOfPublication, descShort, descLong    sql.NullString
		toc, promotional, summary, review                        sql.NullString
		imageSmall, imageLarge, imageOriginal, audioFile, source sql.NullString
		modified, created                                        sql.NullTime
	)
	err := row.Scan(
		&doc.ISBN, &title, &author, &dateOfPublication, &descShort, &descLong,
		&toc, &promotional, &summary, &review, &imageSmall, &imageLarge, &imageOriginal,
		&audioFile, &source, &modified, &created,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound(isbn)
		}
		// A scan conversion failure means the stored item no longer
		// matches the schema we expect.
		if strings.HasPrefix(err.Error(), "sql: Scan error") {
			return nil, apperr.Serialization("stored contents record unreadable", err)
		}
		return nil, &apperr.Error{Kind: apperr.KindNotFound, Msg: fmt.Sprintf("lookup failed for isbn %s", isbn), Cause: err}
	}
	if strings.TrimSpace(doc.ISBN) == "" {
		return nil, apperr.NotFound(isbn)
	}

	doc.Title = title.String
	doc.Author = author.String
	doc.DateOfPublication = dateOfPublication.String
	doc.DescriptionShort = descShort.String
	doc.DescriptionLong = descLong.String
	doc.TableOfContents = toc.String
	doc.Promotional = promotional.String
	doc.Summary = summary.String
	doc.Review = review.String
	doc.ImageSmall = imageSmall.String
	doc.ImageLarge = imageLarge.String
	doc.ImageOriginal = imageOriginal.String
	doc.AudioFile = audioFile.String
	doc.Source = source.String
	if modified.Valid {
		t := modified.Time
		doc.Modified = &t
	}
	if created.Valid {
		t := created.Time
		doc.Created = &t
	}
	return &doc, nil
}

// Update writes the non-blank fields of doc over the stored record with the
// same selective-unescape rule as Create, and always stamps modified to now.
// Zero affected rows is an error, not an empty success.
func (r *ContentsPostgres) Update(ctx context.Context, doc *model.ContentsDocument) error {
	set := []string{"modified = $1"}
	args := []any{r.now().UTC()}

	add := func(col, val string, unescape bool) {
		if strings.TrimSpace(val) == "" {
			return
		}
		if unescape {
			val = entity.UnescapeIfValid(val)
		}
		args = append(args, val)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	add("title", doc.Title, false)
	add("author", doc.Author, false)
	add("date_of_publication", doc.DateOfPublication, false)
	add("description_short", doc.DescriptionShort, true)
	add("description_long", doc.DescriptionLong, true)
	add("table_of_contents", doc.TableOfContents, true)
	add("promotional", doc.Promotional, true)
	add("summary", doc.Summary, true)
	add("review", doc.Review, true)
	add("image_small", doc.ImageSmall, false)
	add("image_large", doc.ImageLarge, false)
	add("image_original", doc.ImageOriginal, false)
	add("audio_file", doc.AudioFile, false)
	add("source", doc.Source, false)

	args = append(args, doc.NormalizedISBN())
	q := fmt.Sprintf(`UPDATE contents SET %s WHERE isbn = $%d`, strings.Join(set, ", "), len(args))

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return apperr.Communication("store rejected update", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Communication("update acknowledgment unreadable", err)
	}
	if n == 0 {
		return apperr.Communication("update returned nothing", nil)
	}
	return nil
}

// nullIfBlank maps a blank optional field to SQL NULL so absent attributes
// stay sparse on the item.
func nullIfBlank(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// unescapedOrNull applies the selective HTML unescape to entity-bearing text
// fields before storing them.
func unescapedOrNull(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: entity.UnescapeIfValid(s), Valid: true}
}
