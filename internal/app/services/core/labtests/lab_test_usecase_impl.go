package labtests

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type labTestUsecase struct {
	LabTestRepository contracts.LabTestRepository
	Log               *zap.Logger
}

func NewLabTestUsecase(
	labTestRepository contracts.LabTestRepository,
	logger *zap.Logger,
) contracts.LabTestUsecase {
	return &labTestUsecase{
		LabTestRepository: labTestRepository,
		Log:               logger,
	}
}

func (uc *labTestUsecase) OrderLabTest(ctx context.Context, session *models.Session, request *requests.OrderLabTest) (*responses.LabTest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("labTestUsecase.OrderLabTest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	now := time.Now()
	labTest := &models.LabTest{
		PatientID:     session.UserID,
		TestName:      request.TestName,
		Description:   request.Description,
		Category:      request.Category,
		Cost:          request.Cost,
		Status:        constvars.LabTestStatusScheduled,
		ScheduledDate: request.ScheduledDate,
		LabCenter: models.LabCenter{
			Name:    request.LabCenterName,
			Address: request.LabCenterAddress,
		},
		HomeCollectionAvailable: request.HomeCollectionAvailable,
		Notes:                   request.Notes,
	}
	labTest.CreatedAt = now
	labTest.UpdatedAt = now

	labTestID, err := uc.LabTestRepository.CreateLabTest(ctx, labTest)
	if err != nil {
		return nil, err
	}
	labTest.ID = labTestID

	return buildLabTestResponse(labTest), nil
}

func (uc *labTestUsecase) GetLabTest(ctx context.Context, session *models.Session, labTestID string) (*responses.LabTest, error) {
	labTest, err := uc.findVisibleLabTest(ctx, session, labTestID)
	if err != nil {
		return nil, err
	}
	return buildLabTestResponse(labTest), nil
}

func (uc *labTestUsecase) ListMyLabTests(ctx context.Context, session *models.Session, page, pageSize int) ([]responses.LabTest, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("labTestUsecase.ListMyLabTests called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	labTestModels, total, err := uc.LabTestRepository.FindByPatientID(ctx, session.UserID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.LabTest, 0, len(labTestModels))
	for i := range labTestModels {
		result = append(result, *buildLabTestResponse(&labTestModels[i]))
	}
	return result, total, nil
}

// UpdateLabTestStatus advances the collection pipeline one step at a
// time. Patients cannot move their own orders; cancellation aside, the
// pipeline only walks forward.
func (uc *labTestUsecase) UpdateLabTestStatus(ctx context.Context, session *models.Session, labTestID string, request *requests.UpdateLabTestStatus) (*responses.LabTest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("labTestUsecase.UpdateLabTestStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	labTest, err := uc.LabTestRepository.FindByID(ctx, labTestID)
	if err != nil {
		return nil, err
	}
	if labTest == nil {
		return nil, exceptions.ErrLabTestNotExist(fmt.Errorf("lab test %s not found", labTestID))
	}

	// A patient may cancel their own pending order; every other move
	// belongs to staff.
	isOwnerCancel := session.IsPatient() &&
		labTest.PatientID == session.UserID &&
		request.Status == constvars.LabTestStatusCancelled
	if session.IsPatient() && !isOwnerCancel {
		return nil, exceptions.ErrRoleForbidden(nil)
	}

	if !labTest.CanTransitionTo(request.Status) {
		return nil, exceptions.ErrInvalidStatusTransition(fmt.Errorf("%s -> %s", labTest.Status, request.Status))
	}

	labTest.Status = request.Status
	if request.Status == constvars.LabTestStatusCompleted && request.ReportURL != "" {
		labTest.ReportURL = request.ReportURL
	}
	labTest.UpdatedAt = time.Now()

	if err := uc.LabTestRepository.UpdateLabTest(ctx, labTest); err != nil {
		return nil, err
	}
	return buildLabTestResponse(labTest), nil
}

func (uc *labTestUsecase) findVisibleLabTest(ctx context.Context, session *models.Session, labTestID string) (*models.LabTest, error) {
	labTest, err := uc.LabTestRepository.FindByID(ctx, labTestID)
	if err != nil {
		return nil, err
	}
	if labTest == nil {
		return nil, exceptions.ErrLabTestNotExist(fmt.Errorf("lab test %s not found", labTestID))
	}
	if labTest.PatientID != session.UserID && session.IsPatient() {
		return nil, exceptions.ErrRoleForbidden(nil)
	}
	return labTest, nil
}

func buildLabTestResponse(labTest *models.LabTest) *responses.LabTest {
	dto := &responses.LabTest{
		ID:                      labTest.ID,
		PatientID:               labTest.PatientID,
		TestName:                labTest.TestName,
		Description:             labTest.Description,
		Category:                labTest.Category,
		Cost:                    labTest.Cost,
		Status:                  labTest.Status,
		ScheduledDate:           labTest.ScheduledDate,
		ReportURL:               labTest.ReportURL,
		LabCenterName:           labTest.LabCenter.Name,
		LabCenterAddress:        labTest.LabCenter.Address,
		HomeCollectionAvailable: labTest.HomeCollectionAvailable,
		Notes:                   labTest.Notes,
	}
	if !labTest.CreatedAt.IsZero() {
		dto.CreatedAt = labTest.CreatedAt.Format(time.RFC3339)
	}
	return dto
}
