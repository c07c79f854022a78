package labtests

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLabTestRepo struct {
	tests  map[string]*models.LabTest
	nextID int
}

func newFakeLabTestRepo() *fakeLabTestRepo {
	return &fakeLabTestRepo{tests: make(map[string]*models.LabTest)}
}

func (r *fakeLabTestRepo) CreateLabTest(ctx context.Context, labTest *models.LabTest) (string, error) {
	r.nextID++
	id := fmt.Sprintf("lab-%d", r.nextID)
	stored := *labTest
	stored.ID = id
	r.tests[id] = &stored
	return id, nil
}

func (r *fakeLabTestRepo) FindByID(ctx context.Context, labTestID string) (*models.LabTest, error) {
	labTest, ok := r.tests[labTestID]
	if !ok {
		return nil, nil
	}
	copied := *labTest
	return &copied, nil
}

func (r *fakeLabTestRepo) FindByPatientID(ctx context.Context, patientID string, page, pageSize int) ([]models.LabTest, int, error) {
	var result []models.LabTest
	for _, labTest := range r.tests {
		if labTest.PatientID == patientID {
			result = append(result, *labTest)
		}
	}
	return result, len(result), nil
}

func (r *fakeLabTestRepo) UpdateLabTest(ctx context.Context, labTest *models.LabTest) error {
	stored := *labTest
	r.tests[labTest.ID] = &stored
	return nil
}

func devMessage(t *testing.T, err error) string {
	t.Helper()
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok, "expected *exceptions.CustomError, got %T: %v", err, err)
	return customErr.DevMessage
}

func labSession(userID, role string) *models.Session {
	return &models.Session{SessionID: "sess-" + userID, UserID: userID, Role: role}
}

func orderRequest() *requests.OrderLabTest {
	return &requests.OrderLabTest{
		TestName:      "Complete Blood Count",
		Category:      "hematology",
		Cost:          350,
		ScheduledDate: "2026-09-05",
		LabCenterName: "City Diagnostics",
	}
}

func orderTest(t *testing.T, usecase contracts.LabTestUsecase) string {
	t.Helper()
	result, err := usecase.OrderLabTest(context.Background(), labSession("patient-1", constvars.RolePatient), orderRequest())
	require.NoError(t, err)
	return result.ID
}

func TestOrderLabTest(t *testing.T) {
	usecase := NewLabTestUsecase(newFakeLabTestRepo(), zap.NewNop())

	result, err := usecase.OrderLabTest(context.Background(), labSession("patient-1", constvars.RolePatient), orderRequest())
	require.NoError(t, err)
	assert.Equal(t, constvars.LabTestStatusScheduled, result.Status, "new orders start scheduled")
	assert.Equal(t, "patient-1", result.PatientID, "the order belongs to the caller, not the payload")
	assert.Equal(t, "City Diagnostics", result.LabCenterName)
}

func TestUpdateLabTestStatus(t *testing.T) {
	ctx := context.Background()
	doctor := labSession("doctor-1", constvars.RoleDoctor)

	t.Run("Pipeline Walks Forward", func(t *testing.T) {
		usecase := NewLabTestUsecase(newFakeLabTestRepo(), zap.NewNop())
		id := orderTest(t, usecase)

		for _, status := range []string{
			constvars.LabTestStatusSampleCollected,
			constvars.LabTestStatusInProgress,
			constvars.LabTestStatusCompleted,
		} {
			result, err := usecase.UpdateLabTestStatus(ctx, doctor, id, &requests.UpdateLabTestStatus{Status: status})
			require.NoError(t, err)
			assert.Equal(t, status, result.Status)
		}
	})

	t.Run("Skipping A Step Rejected", func(t *testing.T) {
		usecase := NewLabTestUsecase(newFakeLabTestRepo(), zap.NewNop())
		id := orderTest(t, usecase)

		_, err := usecase.UpdateLabTestStatus(ctx, doctor, id, &requests.UpdateLabTestStatus{Status: constvars.LabTestStatusCompleted})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevInvalidStatusTransition, devMessage(t, err))
	})

	t.Run("Completion Attaches Report URL", func(t *testing.T) {
		usecase := NewLabTestUsecase(newFakeLabTestRepo(), zap.NewNop())
		id := orderTest(t, usecase)

		_, err := usecase.UpdateLabTestStatus(ctx, doctor, id, &requests.UpdateLabTestStatus{Status: constvars.LabTestStatusSampleCollected})
		require.NoError(t, err)
		_, err = usecase.UpdateLabTestStatus(ctx, doctor, id, &requests.UpdateLabTestStatus{Status: constvars.LabTestStatusInProgress})
		require.NoError(t, err)

		result, err := usecase.UpdateLabTestStatus(ctx, doctor, id, &requests.UpdateLabTestStatus{
			Status:    constvars.LabTestStatusCompleted,
			ReportURL: "https://reports.example.com/lab-1.pdf",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://reports.example.com/lab-1.pdf", result.ReportURL)
	})

	t.Run("Patient May Cancel Own Order", func(t *testing.T) {
		usecase := NewLabTestUsecase(newFakeLabTestRepo(), zap.NewNop())
		id := orderTest(t, usecase)

		result, err := usecase.UpdateLabTestStatus(ctx, labSession("patient-1", constvars.RolePatient), id, &requests.UpdateLabTestStatus{Status: constvars.LabTestStatusCancelled})
		require.NoError(t, err)
		assert.Equal(t, constvars.LabTestStatusCancelled, result.Status)
	})

	t.Run("Patient Cannot Advance Pipeline", func(t *testing.T) {
		usecase := NewLabTestUsecase(newFakeLabTestRepo(), zap.NewNop())
		id := orderTest(t, usecase)

		_, err := usecase.UpdateLabTestStatus(ctx, labSession("patient-1", constvars.RolePatient), id, &requests.UpdateLabTestStatus{Status: constvars.LabTestStatusSampleCollected})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevRoleForbidden, devMessage(t, err))
	})

	t.Run("Other Patient Cannot Cancel", func(t *testing.T) {
		usecase := NewLabTestUsecase(newFakeLabTestRepo(), zap.NewNop())
		id := orderTest(t, usecase)

		_, err := usecase.UpdateLabTestStatus(ctx, labSession("patient-2", constvars.RolePatient), id, &requests.UpdateLabTestStatus{Status: constvars.LabTestStatusCancelled})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevRoleForbidden, devMessage(t, err))
	})

	t.Run("Terminal Is Immutable", func(t *testing.T) {
		usecase := NewLabTestUsecase(newFakeLabTestRepo(), zap.NewNop())
		id := orderTest(t, usecase)

		_, err := usecase.UpdateLabTestStatus(ctx, doctor, id, &requests.UpdateLabTestStatus{Status: constvars.LabTestStatusCancelled})
		require.NoError(t, err)

		_, err = usecase.UpdateLabTestStatus(ctx, doctor, id, &requests.UpdateLabTestStatus{Status: constvars.LabTestStatusSampleCollected})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevInvalidStatusTransition, devMessage(t, err))
	})

	t.Run("Unknown Order", func(t *testing.T) {
		usecase := NewLabTestUsecase(newFakeLabTestRepo(), zap.NewNop())

		_, err := usecase.UpdateLabTestStatus(ctx, doctor, "missing", &requests.UpdateLabTestStatus{Status: constvars.LabTestStatusCancelled})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevLabTestNotFound, devMessage(t, err))
	})
}

func TestGetLabTest(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner Reads Own Order", func(t *testing.T) {
		usecase := NewLabTestUsecase(newFakeLabTestRepo(), zap.NewNop())
		id := orderTest(t, usecase)

		result, err := usecase.GetLabTest(ctx, labSession("patient-1", constvars.RolePatient), id)
		require.NoError(t, err)
		assert.Equal(t, "Complete Blood Count", result.TestName)
	})

	t.Run("Other Patient Forbidden", func(t *testing.T) {
		usecase := NewLabTestUsecase(newFakeLabTestRepo(), zap.NewNop())
		id := orderTest(t, usecase)

		_, err := usecase.GetLabTest(ctx, labSession("patient-2", constvars.RolePatient), id)
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevRoleForbidden, devMessage(t, err))
	})

	t.Run("Staff May Read", func(t *testing.T) {
		usecase := NewLabTestUsecase(newFakeLabTestRepo(), zap.NewNop())
		id := orderTest(t, usecase)

		_, err := usecase.GetLabTest(ctx, labSession("doctor-1", constvars.RoleDoctor), id)
		assert.NoError(t, err)
	})
}