package handler

import (
	"net/http"
	"time"

	"github.com/educhain/educhain-api/internal/errHandler"
	"github.com/educhain/educhain-api/internal/models"
	"github.com/educhain/educhain-api/internal/repository"
	"github.com/educhain/educhain-api/internal/request"
	"github.com/educhain/educhain-api/internal/response"
	"github.com/educhain/educhain-api/internal/validator"
)

type StudentHandler struct {
	StudentRepo repository.StudentRepository
	ErrHandler  *errHandler.ErrorHandler
}

func NewStudentHandler(handler *StudentHandler) *StudentHandler {
	return &StudentHandler{
		StudentRepo: handler.StudentRepo,
		ErrHandler:  handler.ErrHandler,
	}
}

type LocationData struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type StudentResponseData struct {
	ID         string        `json:"id"`
	FullName   string        `json:"full_name"`
	Email      string        `json:"email"`
	Phone      *string       `json:"phone"`
	SchoolName string        `json:"school_name"`
	ClassGrade *string       `json:"class_grade"`
	Address    *string       `json:"address"`
	Country    *string       `json:"country"`
	City       *string       `json:"city"`
	Location   *LocationData `json:"location"`
	Languages  []string      `json:"languages"`
	TrustScore float64       `json:"trust_score"`
	KycStatus  string        `json:"kyc_status"`
	CreatedAt  string        `json:"created_at"`
}

func newStudentResponseData(student *models.Student) *StudentResponseData {
	data := &StudentResponseData{
		ID:         student.ID,
		FullName:   student.FullName,
		Email:      student.Email,
		Phone:      nullStringPtr(student.Phone),
		SchoolName: student.SchoolName,
		ClassGrade: nullStringPtr(student.ClassGrade),
		Address:    nullStringPtr(student.Address),
		Country:    nullStringPtr(student.Country),
		City:       nullStringPtr(student.City),
		Languages:  student.Languages,
		TrustScore: student.TrustScore,
		KycStatus:  student.KycStatus,
		CreatedAt:  student.CreatedAt.Format(time.RFC3339),
	}

	if student.Lat.Valid && student.Lng.Valid {
		data.Location = &LocationData{
			Lat: student.Lat.Float64,
			Lng: student.Lng.Float64,
		}
	}

	if data.Languages == nil {
		data.Languages = []string{}
	}

	return data
}

func (h *StudentHandler) HandleCreateStudent(w http.ResponseWriter, r *http.Request) {
	// The trust score and KYC status are never accepted from the client;
	// the input shape simply has no fields for them and the store writes
	// the defaults.
	type CreateStudentInput struct {
		FullName   string              `json:"full_name"`
		Email      string              `json:"email"`
		Phone      *string             `json:"phone"`
		SchoolName string              `json:"school_name"`
		ClassGrade *string             `json:"class_grade"`
		Address    *string             `json:"address"`
		Country    *string             `json:"country"`
		City       *string             `json:"city"`
		Location   *LocationData       `json:"location"`
		Languages  []string            `json:"languages"`
		Validator  validator.Validator `json:"-"`
	}

	var input CreateStudentInput

	err := request.DecodeJSON(w, r, &input)
	if err != nil {
		h.ErrHandler.BadRequest(w, r, err)
		return
	}

	input.Validator.Check(validator.NotBlank(input.FullName), "Full name is required")
	input.Validator.Check(validator.NotBlank(input.Email), "Email is required")
	input.Validator.Check(validator.Matches(input.Email, validator.RgxEmail), "Email must be a valid email address")
	input.Validator.Check(validator.NotBlank(input.SchoolName), "School name is required")

	if input.Validator.HasErrors() {
		h.ErrHandler.FailedValidation(w, r, input.Validator.Errors)
		return
	}

	student := &models.Student{
		FullName:   input.FullName,
		Email:      input.Email,
		Phone:      nullStringFrom(input.Phone),
		SchoolName: input.SchoolName,
		ClassGrade: nullStringFrom(input.ClassGrade),
		Address:    nullStringFrom(input.Address),
		Country:    nullStringFrom(input.Country),
		City:       nullStringFrom(input.City),
		Languages:  input.Languages,
	}

	if input.Location != nil {
		student.Lat = nullFloatFrom(&input.Location.Lat)
		student.Lng = nullFloatFrom(&input.Location.Lng)
	}

	if student.Languages == nil {
		student.Languages = []string{}
	}

	id, err := h.StudentRepo.Insert(student)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	message := "Student registered successfully"
	err = response.JSONCreatedResponse(w, map[string]any{"id": id}, message)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

func (h *StudentHandler) HandleListStudents(w http.ResponseWriter, r *http.Request) {
	var v validator.Validator

	limit := parseLimitParam(r, 50)
	v.Check(validator.Between(limit, 1, 200), "Limit must be between 1 and 200")

	if v.HasErrors() {
		h.ErrHandler.FailedValidation(w, r, v.Errors)
		return
	}

	students, err := h.StudentRepo.List(limit)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	data := make([]*StudentResponseData, len(students))
	for i := range students {
		data[i] = newStudentResponseData(&students[i])
	}

	message := "Data retrieved successfully"
	err = response.JSONOkResponse(w, data, message, nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}
