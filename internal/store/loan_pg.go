package store

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/entity"
	"github.com/pkg/errors"
)

func (p *Postgres) InsertLoan(ctx context.Context, loan *entity.Loan) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	query, args, err := build(p.dialect.Insert(loansTable).Prepared(true).
		Rows(goqu.Record{
			"patron_id":   loan.PatronID,
			"book_id":     loan.BookID,
			"borrow_date": loan.BorrowDate,
			"due_date":    loan.DueDate,
		}).
		Returning("id"))
	if err != nil {
		return err
	}
	if err := p.q(ctx).QueryRow(ctx, query, args...).Scan(&loan.ID); err != nil {
		return errors.Wrap(err, "insert loan")
	}
	return nil
}

// SetReturnDate closes the most recent open loan of the pair.
func (p *Postgres) SetReturnDate(ctx context.Context, patronID string, bookID int64, returnedAt time.Time) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	latest := p.dialect.From(loansTable).Select("id").
		Where(
			goqu.C("patron_id").Eq(patronID),
			goqu.C("book_id").Eq(bookID),
			goqu.C("return_date").IsNull(),
		).
		Order(goqu.C("borrow_date").Desc(), goqu.C("id").Desc()).
		Limit(1)

	query, args, err := build(p.dialect.Update(loansTable).Prepared(true).
		Set(goqu.Record{"return_date": returnedAt}).
		Where(goqu.Ex{"id": latest}))
	if err != nil {
		return err
	}
	tag, err := p.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "set return date")
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrNoOpenLoan
	}
	return nil
}

func (p *Postgres) CountOpenLoans(ctx context.Context, patronID string) (int, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	query, args, err := build(p.dialect.From(loansTable).Prepared(true).
		Select(goqu.COUNT("*")).
		Where(goqu.C("patron_id").Eq(patronID), goqu.C("return_date").IsNull()))
	if err != nil {
		return 0, err
	}
	var n int
	if err := p.q(ctx).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "count open loans")
	}
	return n, nil
}

func (p *Postgres) loanDetails() *goqu.SelectDataset {
	return p.dialect.From(goqu.T(loansTable).As("l")).Prepared(true).
		Join(goqu.T(booksTable).As("b"), goqu.On(goqu.I("b.id").Eq(goqu.I("l.book_id")))).
		Select("l.id", "l.patron_id", "l.book_id", "l.borrow_date", "l.due_date", "l.return_date", "b.title", "b.author")
}

func (p *Postgres) ListOpenLoans(ctx context.Context, patronID string) ([]entity.LoanDetail, error) {
	return p.listLoans(ctx, p.loanDetails().
		Where(goqu.I("l.patron_id").Eq(patronID), goqu.I("l.return_date").IsNull()).
		Order(goqu.I("l.borrow_date").Asc(), goqu.I("l.id").Asc()))
}

// ListHistory returns every loan of the patron, newest first.
func (p *Postgres) ListHistory(ctx context.Context, patronID string) ([]entity.LoanDetail, error) {
	return p.listLoans(ctx, p.loanDetails().
		Where(goqu.I("l.patron_id").Eq(patronID)).
		Order(goqu.I("l.borrow_date").Desc(), goqu.I("l.id").Desc()))
}

func (p *Postgres) listLoans(ctx context.Context, ds *goqu.SelectDataset) ([]entity.LoanDetail, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	query, args, err := build(ds)
	if err != nil {
		return nil, err
	}
	rows, err := p.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list loans")
	}
	defer rows.Close()

	out := []entity.LoanDetail{}
	for rows.Next() {
		var d entity.LoanDetail
		if err := rows.Scan(&d.ID, &d.PatronID, &d.BookID, &d.BorrowDate, &d.DueDate, &d.ReturnDate, &d.Title, &d.Author); err != nil {
			return nil, errors.Wrap(err, "scan loan")
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list loans")
	}
	return out, nil
}
