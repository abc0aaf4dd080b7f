package registrations

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rcnapps/ordinand/internal/common"
	"github.com/rcnapps/ordinand/internal/dbx"
)

// PostgresRepository persists registrations over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the assembled record and returns the server-assigned id.
// The spiritual history is stored as a JSON array.
func (r *PostgresRepository) Create(ctx context.Context, reg *Registration) (string, error) {
	history, err := json.Marshal(reg.SpiritualHistory)
	if err != nil {
		return "", fmt.Errorf("encode spiritual history: %w", err)
	}

	query := `
		INSERT INTO registrations (
			full_name, date_of_birth, date_of_new_birth, date_of_water_baptism,
			date_of_holy_ghost_baptism, marital_status, ministry_gift, spiritual_gifts,
			address, phone_numbers, email, social_media, recommended_by, place_of_birth,
			is_divorced, divorce_count, last_divorce_date, children_count, spouse_name,
			is_spouse_believer, spouse_date_of_birth, anniversary_date, accepted_christ_date,
			water_baptized, pray_in_tongues, believe_in_tongues, desire_tongues,
			spiritual_gifts_manifest, formal_christian_training, training_institution,
			training_duration, previously_ordained, ordination_type, ordination_date,
			ordination_by, denominational_background, current_affiliation, current_capacity,
			ministry_description, ministry_duration, ministry_income, other_employment,
			employment_description, employment_address, pastor_name, pastor_email,
			pastor_phone, minister_name, minister_email, minister_phone, elder_name,
			elder_email, elder_phone, conversion_experience, devotional_pattern,
			family_devotional, gods_call_experience, ministry_concept, future_vision,
			ministry_success_definition, ministry_strengths, ministry_weaknesses,
			relationship_evaluation, non_ordination_effect, spouse_ministry_feelings,
			spiritual_history, passport_url, document_url, payment_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32,
			$33, $34, $35, $36, $37, $38, $39, $40, $41, $42, $43, $44, $45, $46, $47,
			$48, $49, $50, $51, $52, $53, $54, $55, $56, $57, $58, $59, $60, $61, $62,
			$63, $64, $65, $66, $67, $68, $69
		)
		RETURNING id
	`

	var id string
	err = r.db.QueryRowContext(ctx, query,
		reg.FullName, reg.DateOfBirth, reg.DateOfNewBirth, reg.DateOfWaterBaptism,
		reg.DateOfHolyGhostBaptism, reg.MaritalStatus, reg.MinistryGift, reg.SpiritualGifts,
		reg.Address, reg.PhoneNumbers, reg.Email, reg.SocialMedia, reg.RecommendedBy, reg.PlaceOfBirth,
		reg.IsDivorced, reg.DivorceCount, reg.LastDivorceDate, reg.ChildrenCount, reg.SpouseName,
		reg.IsSpouseBeliever, reg.SpouseDateOfBirth, reg.AnniversaryDate, reg.AcceptedChristDate,
		reg.WaterBaptized, reg.PrayInTongues, reg.BelieveInTongues, reg.DesireTongues,
		reg.SpiritualGiftsManifest, reg.FormalChristianTraining, reg.TrainingInstitution,
		reg.TrainingDuration, reg.PreviouslyOrdained, reg.OrdinationType, reg.OrdinationDate,
		reg.OrdinationBy, reg.DenominationalBackground, reg.CurrentAffiliation, reg.CurrentCapacity,
		reg.MinistryDescription, reg.MinistryDuration, reg.MinistryIncome, reg.OtherEmployment,
		reg.EmploymentDescription, reg.EmploymentAddress, reg.PastorName, reg.PastorEmail,
		reg.PastorPhone, reg.MinisterName, reg.MinisterEmail, reg.MinisterPhone, reg.ElderName,
		reg.ElderEmail, reg.ElderPhone, reg.ConversionExperience, reg.DevotionalPattern,
		reg.FamilyDevotional, reg.GodsCallExperience, reg.MinistryConcept, reg.FutureVision,
		reg.MinistrySuccessDefinition, reg.MinistryStrengths, reg.MinistryWeaknesses,
		reg.RelationshipEvaluation, reg.NonOrdinationEffect, reg.SpouseMinistryFeelings,
		history, reg.PassportURL, reg.DocumentURL, reg.PaymentStatus,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

// List returns all registrations, newest first, as admin summaries.
func (r *PostgresRepository) List(ctx context.Context) ([]*Summary, error) {
	query := `
		SELECT id, full_name, email, payment_status, created_at
		FROM registrations
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*Summary
	for rows.Next() {
		var item Summary
		if err := rows.Scan(&item.ID, &item.FullName, &item.Email, &item.PaymentStatus, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdatePaymentStatus records the payment state reported by the out-of-band
// payment collaborator. Unknown ids yield common.ErrorNotFound.
func (r *PostgresRepository) UpdatePaymentStatus(ctx context.Context, id string, status string) error {
	query := `UPDATE registrations SET payment_status = $2, updated_at = now() WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	ra, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}
