package employee

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	errors "office-management/internal"
	"office-management/internal/core/common/validation"
)

const (
	dateLayout    = "2006-01-02"
	maxUploadSize = 5 << 20
)

// UploadedImage is a profile picture lifted out of a multipart request,
// waiting to be pushed to the image host.
type UploadedImage struct {
	Name string
	Data []byte
}

type RegisterEmployeeDTO struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	Position      string  `json:"position"`
	Department    string  `json:"department"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	DateOfJoining string  `json:"dateOfJoining"`
	DateOfBirth   string  `json:"dateOfBirth"`
	Salary        float64 `json:"salary"`

	Picture *UploadedImage `json:"-"`
}

func (d RegisterEmployeeDTO) Validate() *errors.AppError {
	validator := validation.NewValidator()

	validator.Field("name", d.Name).Required().MaxLength(100)
	validator.Field("email", d.Email).Required().Email()
	validator.Field("password", d.Password).Required().MinLength(8)
	validator.Field("salary", d.Salary).NonNegative()

	return validator.Validate()
}

type UpdateEmployeeDTO struct {
	EmployeeID    int64    `json:"employeeId"`
	Name          *string  `json:"name,omitempty"`
	Email         *string  `json:"email,omitempty"`
	Password      *string  `json:"password,omitempty"`
	Position      *string  `json:"position,omitempty"`
	Department    *string  `json:"department,omitempty"`
	Phone         *string  `json:"phone,omitempty"`
	Address       *string  `json:"address,omitempty"`
	DateOfJoining *string  `json:"dateOfJoining,omitempty"`
	DateOfBirth   *string  `json:"dateOfBirth,omitempty"`
	Salary        *float64 `json:"salary,omitempty"`
	IsActive      *bool    `json:"isActive,omitempty"`

	Picture *UploadedImage `json:"-"`
}

func parseDate(value string) (time.Time, *errors.AppError) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, errors.NewValidationError("invalid date: "+value, errors.ErrCodeInvalidDate)
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

func formImage(r *http.Request, field string) (*UploadedImage, *errors.AppError) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewValidationError("invalid "+field+" upload", errors.ErrCodeValidationFailed)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		return nil, errors.NewValidationError("failed to read "+field+" upload", errors.ErrCodeValidationFailed)
	}
	if len(data) > maxUploadSize {
		return nil, errors.NewValidationError(field+" exceeds the upload size limit", errors.ErrCodeValidationFailed)
	}

	return &UploadedImage{Name: header.Filename, Data: data}, nil
}

// ParseRegisterRequest accepts either a JSON body or a multipart form with
// an optional profilePicture file.
func ParseRegisterRequest(r *http.Request) (RegisterEmployeeDTO, *errors.AppError) {
	var dto RegisterEmployeeDTO

	if !isMultipart(r) {
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			return dto, errors.NewValidationError("invalid request body", errors.ErrCodeValidationFailed)
		}
		return dto, nil
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return dto, errors.NewValidationError("invalid multipart form", errors.ErrCodeValidationFailed)
	}

	dto.Name = r.FormValue("name")
	dto.Email = r.FormValue("email")
	dto.Password = r.FormValue("password")
	dto.Position = r.FormValue("position")
	dto.Department = r.FormValue("department")
	dto.Phone = r.FormValue("phone")
	dto.Address = r.FormValue("address")
	dto.DateOfJoining = r.FormValue("dateOfJoining")
	dto.DateOfBirth = r.FormValue("dateOfBirth")
	if raw := r.FormValue("salary"); raw != "" {
		salary, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return dto, errors.NewValidationError("invalid salary", errors.ErrCodeValidationFailed)
		}
		dto.Salary = salary
	}

	picture, appErr := formImage(r, "profilePicture")
	if appErr != nil {
		return dto, appErr
	}
	dto.Picture = picture

	return dto, nil
}

// ParseUpdateRequest mirrors ParseRegisterRequest for the partial-update
// shape: multipart fields are treated as set only when present in the form.
func ParseUpdateRequest(r *http.Request) (UpdateEmployeeDTO, *errors.AppError) {
	var dto UpdateEmployeeDTO

	if !isMultipart(r) {
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			return dto, errors.NewValidationError("invalid request body", errors.ErrCodeValidationFailed)
		}
		return dto, nil
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return dto, errors.NewValidationError("invalid multipart form", errors.ErrCodeValidationFailed)
	}

	if raw := r.FormValue("employeeId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return dto, errors.NewValidationError("invalid employeeId", errors.ErrCodeValidationFailed)
		}
		dto.EmployeeID = id
	}

	stringField := func(name string) *string {
		values, ok := r.MultipartForm.Value[name]
		if !ok || len(values) == 0 {
			return nil
		}
		return &values[0]
	}

	dto.Name = stringField("name")
	dto.Email = stringField("email")
	dto.Password = stringField("password")
	dto.Position = stringField("position")
	dto.Department = stringField("department")
	dto.Phone = stringField("phone")
	dto.Address = stringField("address")
	dto.DateOfJoining = stringField("dateOfJoining")
	dto.DateOfBirth = stringField("dateOfBirth")
	if raw := stringField("salary"); raw != nil {
		salary, err := strconv.ParseFloat(*raw, 64)
		if err != nil {
			return dto, errors.NewValidationError("invalid salary", errors.ErrCodeValidationFailed)
		}
		dto.Salary = &salary
	}
	if raw := stringField("isActive"); raw != nil {
		active, err := strconv.ParseBool(*raw)
		if err != nil {
			return dto, errors.NewValidationError("invalid isActive", errors.ErrCodeValidationFailed)
		}
		dto.IsActive = &active
	}

	picture, appErr := formImage(r, "profilePicture")
	if appErr != nil {
		return dto, appErr
	}
	dto.Picture = picture

	return dto, nil
}
