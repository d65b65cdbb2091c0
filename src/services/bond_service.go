package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/username/fintrack/src/logger"
	"github.com/username/fintrack/src/models"
	"github.com/username/fintrack/src/processors"
	"github.com/username/fintrack/src/security/validation"
	"github.com/username/fintrack/src/utils"
)

const bondColumns = `id, user_id, issuer, bond_type, face_value, coupon_rate, maturity_date, purchase_date,
	purchase_price, current_price, rating, notes, created_at, updated_at`

type bondServiceImpl struct {
	db        *sql.DB
	processor processors.BondProcessor
}

func NewBondService(db *sql.DB, processor processors.BondProcessor) BondService {
	return &bondServiceImpl{db: db, processor: processor}
}

func scanBond(row rowScanner) (models.Bond, error) {
	var b models.Bond
	err := row.Scan(&b.ID, &b.UserID, &b.Issuer, &b.BondType, &b.FaceValue, &b.CouponRate, &b.MaturityDate,
		&b.PurchaseDate, &b.PurchasePrice, &b.CurrentPrice, &b.Rating, &b.Notes, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (s *bondServiceImpl) query(ctx context.Context, where string, args ...interface{}) ([]models.Bond, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+bondColumns+` FROM bonds WHERE `+where+` ORDER BY maturity_date ASC, id ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying bonds: %w", err)
	}
	defer rows.Close()

	bonds := []models.Bond{}
	for rows.Next() {
		bond, err := scanBond(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bond row: %w", err)
		}
		bonds = append(bonds, bond)
	}
	return bonds, rows.Err()
}

func (s *bondServiceImpl) positions(bonds []models.Bond) []models.BondPosition {
	today := utils.Today()
	out := make([]models.BondPosition, 0, len(bonds))
	for _, b := range bonds {
		out = append(out, s.processor.Value(b, today))
	}
	return out
}

func (s *bondServiceImpl) All(ctx context.Context, userID int64) ([]models.Bond, error) {
	return s.query(ctx, "user_id = ?", userID)
}

func (s *bondServiceImpl) List(ctx context.Context, userID int64, bondType string) ([]models.BondPosition, error) {
	var (
		bonds []models.Bond
		err   error
	)
	if bondType = strings.ToLower(strings.TrimSpace(bondType)); bondType != "" {
		bonds, err = s.query(ctx, "user_id = ? AND bond_type = ?", userID, bondType)
	} else {
		bonds, err = s.All(ctx, userID)
	}
	if err != nil {
		return nil, err
	}
	return s.positions(bonds), nil
}

func (s *bondServiceImpl) load(ctx context.Context, userID, id int64) (models.Bond, error) {
	bond, err := scanBond(s.db.QueryRowContext(ctx,
		`SELECT `+bondColumns+` FROM bonds WHERE id = ? AND user_id = ?`, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return bond, ErrNotFound
	}
	if err != nil {
		return bond, fmt.Errorf("loading bond %d: %w", id, err)
	}
	return bond, nil
}

func (s *bondServiceImpl) Get(ctx context.Context, userID, id int64) (*models.BondPosition, error) {
	bond, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	pos := s.processor.Value(bond, utils.Today())
	return &pos, nil
}

func (s *bondServiceImpl) Create(ctx context.Context, userID int64, req models.CreateBondRequest) (*models.BondPosition, error) {
	if req.FaceValue == nil || req.CouponRate == nil || req.PurchasePrice == nil {
		return nil, validation.NewError("face_value", "face_value, coupon_rate and purchase_price are required")
	}
	currentPrice := *req.PurchasePrice
	if req.CurrentPrice != nil {
		currentPrice = *req.CurrentPrice
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO bonds (user_id, issuer, bond_type, face_value, coupon_rate, maturity_date, purchase_date,
			purchase_price, current_price, rating, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, validation.CleanText(req.Issuer), strings.ToLower(req.BondType), *req.FaceValue, *req.CouponRate,
		req.MaturityDate, req.PurchaseDate, *req.PurchasePrice, currentPrice,
		strings.ToUpper(validation.CleanText(req.Rating)), validation.CleanText(req.Notes))
	if err != nil {
		return nil, fmt.Errorf("inserting bond: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new bond id: %w", err)
	}
	logger.FromContext(ctx).Info("Bond created", "userID", userID, "bondID", id)
	return s.Get(ctx, userID, id)
}

func (s *bondServiceImpl) Update(ctx context.Context, userID, id int64, req models.UpdateBondRequest) (*models.BondPosition, error) {
	if _, err := s.load(ctx, userID, id); err != nil {
		return nil, err
	}

	var b updateBuilder
	if req.Issuer != nil {
		b.set("issuer", validation.CleanText(*req.Issuer))
	}
	if req.BondType != nil {
		b.set("bond_type", strings.ToLower(*req.BondType))
	}
	if req.FaceValue != nil {
		b.set("face_value", *req.FaceValue)
	}
	if req.CouponRate != nil {
		b.set("coupon_rate", *req.CouponRate)
	}
	if req.MaturityDate != nil {
		b.set("maturity_date", *req.MaturityDate)
	}
	if req.PurchaseDate != nil {
		b.set("purchase_date", *req.PurchaseDate)
	}
	if req.PurchasePrice != nil {
		b.set("purchase_price", *req.PurchasePrice)
	}
	if req.CurrentPrice != nil {
		b.set("current_price", *req.CurrentPrice)
	}
	if req.Rating != nil {
		b.set("rating", strings.ToUpper(validation.CleanText(*req.Rating)))
	}
	if req.Notes != nil {
		b.set("notes", validation.CleanText(*req.Notes))
	}

	if err := b.exec(ctx, s.db, "bonds", id, userID); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, id)
}

func (s *bondServiceImpl) Delete(ctx context.Context, userID, id int64) error {
	if err := deleteRow(ctx, s.db, "bonds", id, userID); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Bond deleted", "userID", userID, "bondID", id)
	return nil
}

func (s *bondServiceImpl) Summary(ctx context.Context, userID int64) (*models.BondSummary, error) {
	bonds, err := s.All(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := s.processor.Summarize(bonds)
	return &summary, nil
}

func (s *bondServiceImpl) Maturing(ctx context.Context, userID int64, withinDays int) ([]models.BondPosition, error) {
	bonds, err := s.All(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.processor.Maturing(bonds, utils.Today(), withinDays), nil
}
