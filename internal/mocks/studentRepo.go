package mocks

import (
	"github.com/educhain/educhain-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockStudentRepo struct {
	mock.Mock
}

func (m *MockStudentRepo) Insert(student *models.Student) (string, error) {
	args := m.Called(student)
	return args.String(0), args.Error(1)
}

func (m *MockStudentRepo) GetOne(id string) (*models.Student, bool, error) {
	args := m.Called(id)
	student, _ := args.Get(0).(*models.Student)
	return student, args.Bool(1), args.Error(2)
}

func (m *MockStudentRepo) List(limit int) ([]models.Student, error) {
	args := m.Called(limit)
	students, _ := args.Get(0).([]models.Student)
	return students, args.Error(1)
}

func (m *MockStudentRepo) Search(query string, hasLocation bool, limit int) ([]models.Student, error) {
	args := m.Called(query, hasLocation, limit)
	students, _ := args.Get(0).([]models.Student)
	return students, args.Error(1)
}

func (m *MockStudentRepo) Heatmap() ([]models.HeatmapPoint, error) {
	args := m.Called()
	points, _ := args.Get(0).([]models.HeatmapPoint)
	return points, args.Error(1)
}

func (m *MockStudentRepo) UpdateTrustScore(id string, score float64) error {
	args := m.Called(id, score)
	return args.Error(0)
}

func (m *MockStudentRepo) UpdateKycStatus(id string, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}
