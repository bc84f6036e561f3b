package admin

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"

	errors "office-management/internal"
	"office-management/internal/core/common/validation"
)

const maxUploadSize = 5 << 20

type UploadedImage struct {
	Name string
	Data []byte
}

type RegisterAdminDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`

	Picture *UploadedImage `json:"-"`
}

func (d RegisterAdminDTO) Validate() *errors.AppError {
	validator := validation.NewValidator()

	validator.Field("name", d.Name).Required().MaxLength(100)
	validator.Field("email", d.Email).Required().Email()
	validator.Field("password", d.Password).Required().MinLength(8)

	return validator.Validate()
}

type UpdateAdminDTO struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`

	Picture *UploadedImage `json:"-"`
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

func formImage(r *http.Request) (*UploadedImage, *errors.AppError) {
	file, header, err := r.FormFile("profilePicture")
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewValidationError("invalid profilePicture upload", errors.ErrCodeValidationFailed)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		return nil, errors.NewValidationError("failed to read profilePicture upload", errors.ErrCodeValidationFailed)
	}
	if len(data) > maxUploadSize {
		return nil, errors.NewValidationError("profilePicture exceeds the upload size limit", errors.ErrCodeValidationFailed)
	}

	return &UploadedImage{Name: header.Filename, Data: data}, nil
}

func ParseRegisterRequest(r *http.Request) (RegisterAdminDTO, *errors.AppError) {
	var dto RegisterAdminDTO

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

	picture, appErr := formImage(r)
	if appErr != nil {
		return dto, appErr
	}
	dto.Picture = picture

	return dto, nil
}

func ParseUpdateRequest(r *http.Request) (UpdateAdminDTO, *errors.AppError) {
	var dto UpdateAdminDTO

	if !isMultipart(r) {
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			return dto, errors.NewValidationError("invalid request body", errors.ErrCodeValidationFailed)
		}
		return dto, nil
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return dto, errors.NewValidationError("invalid multipart form", errors.ErrCodeValidationFailed)
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

	picture, appErr := formImage(r)
	if appErr != nil {
		return dto, appErr
	}
	dto.Picture = picture

	return dto, nil
}
