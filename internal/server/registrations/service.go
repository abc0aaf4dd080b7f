package registrations

import (
	"context"
	"fmt"
	"strings"

	"github.com/rcnapps/ordinand/internal/common"
	"github.com/rcnapps/ordinand/internal/logging"
	"github.com/rcnapps/ordinand/internal/server/assets"
	"github.com/rcnapps/ordinand/internal/server/wizard"
)

// Uploader is the slice of the asset service the submission flow needs.
type Uploader interface {
	Upload(ctx context.Context, category, fileName, contentType string, data []byte) assets.Outcome
}

// Service performs the one-shot submission: sequential asset uploads,
// record assembly, and the single insert.
type Service struct {
	repo     Repository
	uploader Uploader
	logger   logging.Logger
}

// NewService constructs a submission service.
func NewService(repo Repository, uploader Uploader, logger logging.Logger) *Service {
	return &Service{
		repo:     repo,
		uploader: uploader,
		logger:   logger.With("module", "registrations"),
	}
}

// Submit runs one submission attempt. Uploads are sequential: the document
// does not start until the passport has resolved, and the insert waits for
// both. An asset that was selected but failed to upload aborts the attempt
// before the insert — a required attachment is never silently dropped.
func (s *Service) Submit(ctx context.Context, sub *wizard.Submission) (string, error) {
	var passportURL, documentURL *string

	if sub.Passport != nil {
		out := s.uploader.Upload(ctx, assets.CategoryPassports, sub.Passport.FileName, sub.Passport.ContentType, sub.Passport.Data)
		if out.Status != assets.Uploaded {
			return "", fmt.Errorf("passport photo: %w", common.ErrorUploadFailed)
		}
		passportURL = &out.URL
	}

	if sub.Document != nil {
		out := s.uploader.Upload(ctx, assets.CategoryDocuments, sub.Document.FileName, sub.Document.ContentType, sub.Document.Data)
		if out.Status != assets.Uploaded {
			return "", fmt.Errorf("supporting document: %w", common.ErrorUploadFailed)
		}
		documentURL = &out.URL
	}

	reg := assemble(sub, passportURL, documentURL)

	id, err := s.repo.Create(ctx, reg)
	if err != nil {
		s.logger.Error(ctx, "registration insert failed", "error", err)
		return "", fmt.Errorf("error creating registration: %w", err)
	}

	s.logger.Info(ctx, "registration submitted", "id", id, "full_name", reg.FullName)
	return id, nil
}

// List returns admin summaries of all registrations.
func (s *Service) List(ctx context.Context) ([]*Summary, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing registrations: %w", err)
	}
	return result, nil
}

// RecordPayment stores the payment status reported for a registration.
func (s *Service) RecordPayment(ctx context.Context, id string, status string) error {
	if err := s.repo.UpdatePaymentStatus(ctx, id, status); err != nil {
		return fmt.Errorf("error updating payment status: %w", err)
	}
	s.logger.Info(ctx, "payment status recorded", "id", id, "status", status)
	return nil
}

// assemble flattens the step payloads into the persisted record. Field names
// move from the form's camelCase to the table's snake_case here; optional
// values pass through nullable so a blank never reaches a nullable column.
func assemble(sub *wizard.Submission, passportURL, documentURL *string) *Registration {
	one, two, three := sub.StepOne, sub.StepTwo, sub.StepThree

	return &Registration{
		FullName:               one.FullName,
		DateOfBirth:            one.DateOfBirth,
		DateOfNewBirth:         one.DateOfNewBirth,
		DateOfWaterBaptism:     one.DateOfWaterBaptism,
		DateOfHolyGhostBaptism: one.DateOfHolyGhostBaptism,
		MaritalStatus:          one.MaritalStatus,
		MinistryGift:           one.MinistryGift,
		SpiritualGifts:         one.SpiritualGifts,

		Address:                  two.Address,
		PhoneNumbers:             two.PhoneNumbers,
		Email:                    two.Email,
		SocialMedia:              nullable(two.SocialMedia),
		RecommendedBy:            two.RecommendedBy,
		PlaceOfBirth:             two.PlaceOfBirth,
		IsDivorced:               two.IsDivorced,
		DivorceCount:             nullable(two.DivorceCount),
		LastDivorceDate:          nullable(two.LastDivorceDate),
		ChildrenCount:            two.ChildrenCount,
		SpouseName:               two.SpouseName,
		IsSpouseBeliever:         two.IsSpouseBeliever,
		SpouseDateOfBirth:        two.SpouseDateOfBirth,
		AnniversaryDate:          two.AnniversaryDate,
		AcceptedChristDate:       two.AcceptedChristDate,
		WaterBaptized:            two.WaterBaptized,
		PrayInTongues:            two.PrayInTongues,
		BelieveInTongues:         nullable(two.BelieveInTongues),
		DesireTongues:            nullable(two.DesireTongues),
		SpiritualGiftsManifest:   two.SpiritualGiftsManifest,
		FormalChristianTraining:  two.FormalChristianTraining,
		TrainingInstitution:      nullable(two.TrainingInstitution),
		TrainingDuration:         nullable(two.TrainingDuration),
		PreviouslyOrdained:       two.PreviouslyOrdained,
		OrdinationType:           nullable(two.OrdinationType),
		OrdinationDate:           nullable(two.OrdinationDate),
		OrdinationBy:             nullable(two.OrdinationBy),
		DenominationalBackground: two.DenominationalBackground,
		CurrentAffiliation:       two.CurrentAffiliation,
		CurrentCapacity:          two.CurrentCapacity,
		MinistryDescription:      two.MinistryDescription,
		MinistryDuration:         two.MinistryDuration,
		MinistryIncome:           two.MinistryIncome,
		OtherEmployment:          two.OtherEmployment,
		EmploymentDescription:    nullable(two.EmploymentDescription),
		EmploymentAddress:        nullable(two.EmploymentAddress),
		PastorName:               two.PastorName,
		PastorEmail:              two.PastorEmail,
		PastorPhone:              two.PastorPhone,
		MinisterName:             two.MinisterName,
		MinisterEmail:            two.MinisterEmail,
		MinisterPhone:            two.MinisterPhone,
		ElderName:                two.ElderName,
		ElderEmail:               two.ElderEmail,
		ElderPhone:               two.ElderPhone,

		ConversionExperience:      three.ConversionExperience,
		DevotionalPattern:         three.DevotionalPattern,
		FamilyDevotional:          three.FamilyDevotional,
		GodsCallExperience:        three.GodsCallExperience,
		MinistryConcept:           three.MinistryConcept,
		FutureVision:              three.FutureVision,
		MinistrySuccessDefinition: three.MinistrySuccessDefinition,
		MinistryStrengths:         three.MinistryStrengths,
		MinistryWeaknesses:        three.MinistryWeaknesses,
		RelationshipEvaluation:    three.RelationshipEvaluation,
		NonOrdinationEffect:       three.NonOrdinationEffect,
		SpouseMinistryFeelings:    three.SpouseMinistryFeelings,

		SpiritualHistory: sub.History,
		PassportURL:      passportURL,
		DocumentURL:      documentURL,
		PaymentStatus:    PaymentStatusPending,
	}
}

// nullable maps a blank string to NULL.
func nullable(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
