package store

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/catalog"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/entity"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

var bookColumns = []interface{}{"id", "title", "author", "isbn", "total_copies", "available_copies", "created_at"}

func (p *Postgres) books() *goqu.SelectDataset {
	return p.dialect.From(booksTable).Select(bookColumns...).Prepared(true)
}

func (p *Postgres) GetByID(ctx context.Context, id int64) (entity.Book, error) {
	return p.getBook(ctx, p.books().Where(goqu.C("id").Eq(id)))
}

func (p *Postgres) GetByISBN(ctx context.Context, isbn string) (entity.Book, error) {
	return p.getBook(ctx, p.books().Where(goqu.C("isbn").Eq(isbn)))
}

func (p *Postgres) getBook(ctx context.Context, ds *goqu.SelectDataset) (entity.Book, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	query, args, err := build(ds)
	if err != nil {
		return entity.Book{}, err
	}
	var b entity.Book
	err = p.q(ctx).QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.TotalCopies, &b.AvailableCopies, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, entity.ErrBookNotFound
		}
		return entity.Book{}, errors.Wrap(err, "get book")
	}
	return b, nil
}

func (p *Postgres) Insert(ctx context.Context, book *entity.Book) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	query, args, err := build(p.dialect.Insert(booksTable).Prepared(true).
		Rows(goqu.Record{
			"title":            book.Title,
			"author":           book.Author,
			"isbn":             book.ISBN,
			"total_copies":     book.TotalCopies,
			"available_copies": book.AvailableCopies,
		}).
		Returning("id", "created_at"))
	if err != nil {
		return err
	}
	if err := p.q(ctx).QueryRow(ctx, query, args...).Scan(&book.ID, &book.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return entity.ErrDuplicateISBN
		}
		return errors.Wrap(err, "insert book")
	}
	return nil
}

func (p *Postgres) List(ctx context.Context) ([]entity.Book, error) {
	return p.listBooks(ctx, p.books().Order(goqu.C("title").Asc(), goqu.C("id").Asc()))
}

func (p *Postgres) Search(ctx context.Context, q catalog.SearchQuery) ([]entity.Book, error) {
	ds := p.books()
	switch q.Field {
	case catalog.SearchByTitle:
		ds = ds.Where(goqu.C("title").ILike("%" + escapeLike(q.Term) + "%"))
	case catalog.SearchByAuthor:
		ds = ds.Where(goqu.C("author").ILike("%" + escapeLike(q.Term) + "%"))
	case catalog.SearchByISBN:
		ds = ds.Where(goqu.C("isbn").Eq(q.Term))
	default:
		return []entity.Book{}, nil
	}
	return p.listBooks(ctx, ds.Order(goqu.C("title").Asc(), goqu.C("id").Asc()))
}

func (p *Postgres) listBooks(ctx context.Context, ds *goqu.SelectDataset) ([]entity.Book, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	query, args, err := build(ds)
	if err != nil {
		return nil, err
	}
	rows, err := p.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list books")
	}
	defer rows.Close()

	books := []entity.Book{}
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.TotalCopies, &b.AvailableCopies, &b.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan book")
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list books")
	}
	return books, nil
}

// AdjustAvailability applies delta only while the result stays within
// [0, total_copies]; the guard lives in the WHERE clause so concurrent
// borrowers cannot both take the last copy.
func (p *Postgres) AdjustAvailability(ctx context.Context, bookID int64, delta int) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	query, args, err := build(p.dialect.Update(booksTable).Prepared(true).
		Set(goqu.Record{"available_copies": goqu.L("available_copies + ?", delta)}).
		Where(
			goqu.C("id").Eq(bookID),
			goqu.L("available_copies + ? BETWEEN 0 AND total_copies", delta),
		))
	if err != nil {
		return err
	}
	tag, err := p.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "adjust availability")
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	if _, err := p.GetByID(ctx, bookID); err != nil {
		return err
	}
	return entity.ErrAvailabilityConflict
}

func escapeLike(s string) string {
	r := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			r = append(r, '\\')
		}
		r = append(r, s[i])
	}
	return string(r)
}
