package handler

import (
	"time"

	"github.com/SANTHOSHG-WEB/disaster/internal/catalog"
	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
)

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   u.UpdatedAt.Format(time.RFC3339),
	}
}

// ModuleDTO is the JSON representation of a course module. Quiz
// questions are included without their correct answers.
type ModuleDTO struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	VideoID     string            `json:"videoId"`
	Duration    string            `json:"duration"`
	GameType    string            `json:"gameType"`
	Questions   []QuizQuestionDTO `json:"questions"`
}

// QuizQuestionDTO is a quiz question as shown to the learner.
type QuizQuestionDTO struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
}

func toModuleDTO(m *catalog.Module) ModuleDTO {
	questions := make([]QuizQuestionDTO, len(m.Quiz))
	for i, q := range m.Quiz {
		questions[i] = QuizQuestionDTO{
			ID:       q.ID,
			Type:     q.Type,
			Question: q.Question,
			Options:  q.Options,
		}
	}
	return ModuleDTO{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		VideoID:     m.VideoID,
		Duration:    m.Duration,
		GameType:    m.GameType,
		Questions:   questions,
	}
}

// ContactDTO is the JSON representation of an emergency contact.
type ContactDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

func toContactDTO(c *domain.EmergencyContact) ContactDTO {
	return ContactDTO{
		ID:       c.ID,
		Name:     c.Name,
		Phone:    c.Phone,
		Relation: c.Relation,
	}
}

func toContactDTOs(contacts []domain.EmergencyContact) []ContactDTO {
	dtos := make([]ContactDTO, len(contacts))
	for i := range contacts {
		dtos[i] = toContactDTO(&contacts[i])
	}
	return dtos
}

// ShelterDTO is the JSON representation of an emergency shelter.
type ShelterDTO struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	District string  `json:"district"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Capacity int     `json:"capacity"`
	Phone    string  `json:"phone"`
}

func toShelterDTO(s *domain.Shelter) ShelterDTO {
	return ShelterDTO{
		ID:       s.ID,
		Name:     s.Name,
		Address:  s.Address,
		District: s.District,
		Lat:      s.Lat,
		Lng:      s.Lng,
		Capacity: s.Capacity,
		Phone:    s.Phone,
	}
}

func toShelterDTOs(shelters []domain.Shelter) []ShelterDTO {
	dtos := make([]ShelterDTO, len(shelters))
	for i := range shelters {
		dtos[i] = toShelterDTO(&shelters[i])
	}
	return dtos
}

// NearbyShelterDTO is a shelter paired with its distance from the
// query point.
type NearbyShelterDTO struct {
	ShelterDTO
	DistanceKm float64 `json:"distanceKm"`
}

// AlertDTO is the JSON representation of a weather alert.
type AlertDTO struct {
	Region      string `json:"region"`
	Event       string `json:"event"`
	Severity    string `json:"severity"`
	Headline    string `json:"headline,omitempty"`
	Description string `json:"description,omitempty"`
	IssuedAt    string `json:"issuedAt,omitempty"`
	ExpiresAt   string `json:"expiresAt,omitempty"`
}

func toAlertDTO(a domain.WeatherAlert) AlertDTO {
	dto := AlertDTO{
		Region:      a.Region,
		Event:       a.Event,
		Severity:    a.Severity,
		Headline:    a.Headline,
		Description: a.Description,
	}
	if !a.IssuedAt.IsZero() {
		dto.IssuedAt = a.IssuedAt.Format(time.RFC3339)
	}
	if !a.ExpiresAt.IsZero() {
		dto.ExpiresAt = a.ExpiresAt.Format(time.RFC3339)
	}
	return dto
}

func toAlertDTOs(alerts []domain.WeatherAlert) []AlertDTO {
	dtos := make([]AlertDTO, len(alerts))
	for i, a := range alerts {
		dtos[i] = toAlertDTO(a)
	}
	return dtos
}

// CertificateDTO is the JSON representation of a completion certificate.
type CertificateDTO struct {
	ID            string `json:"id"`
	RecipientName string `json:"recipientName"`
	IssuedAt      string `json:"issuedAt"`
}

func toCertificateDTO(c *domain.Certificate) CertificateDTO {
	return CertificateDTO{
		ID:            c.ID,
		RecipientName: c.RecipientName,
		IssuedAt:      c.IssuedAt.Format(time.RFC3339),
	}
}
