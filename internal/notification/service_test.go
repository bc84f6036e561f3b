package notification_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"office-management/internal/core/events"
	"office-management/internal/notification"

	notificationDatamodel "office-management/internal/core/datamodel/notification"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestNotificationService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Notification Service Suite")
}

// MockRepository implements notification.RepositoryAPI for testing
type MockRepository struct {
	notifications map[int64]*notificationDatamodel.Notification
	nextID        int64
	shouldFail    bool
	failError     error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		notifications: make(map[int64]*notificationDatamodel.Notification),
		nextID:        1,
	}
}

func (m *MockRepository) SetShouldFail(fail bool, err error) {
	m.shouldFail = fail
	m.failError = err
}

func (m *MockRepository) Create(record *notificationDatamodel.Notification) error {
	if m.shouldFail {
		return m.failError
	}
	record.ID = m.nextID
	m.nextID++
	m.notifications[record.ID] = record
	return nil
}

func (m *MockRepository) GetByID(id int64) (*notificationDatamodel.Notification, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	record, ok := m.notifications[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return record, nil
}

func (m *MockRepository) Update(record *notificationDatamodel.Notification) error {
	if m.shouldFail {
		return m.failError
	}
	m.notifications[record.ID] = record
	return nil
}

func (m *MockRepository) Delete(id int64) error {
	if m.shouldFail {
		return m.failError
	}
	delete(m.notifications, id)
	return nil
}

func (m *MockRepository) ListForAudience(audiences ...string) ([]*notificationDatamodel.Notification, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var out []*notificationDatamodel.Notification
	for _, record := range m.notifications {
		for _, audience := range audiences {
			if record.ForWhom == audience {
				out = append(out, record)
				break
			}
		}
	}
	return out, nil
}

var _ = Describe("Notification Service", func() {
	var (
		mockRepo *MockRepository
		service  *notification.Service
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = notification.NewService(mockRepo, logger)
	})

	Describe("Create", func() {
		It("normalizes the audience", func() {
			created, err := service.Create(notification.NewNotificationDTO{
				Message: "Office closed on Friday",
				ForWhom: "all",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(created.ForWhom).To(Equal(notification.AudienceAll))
		})

		It("rejects an unknown audience", func() {
			_, err := service.Create(notification.NewNotificationDTO{
				Message: "Office closed on Friday",
				ForWhom: "INTERNS",
			})
			Expect(err).To(Equal(notification.ErrInvalidAudience))
		})

		It("rejects a missing message", func() {
			_, err := service.Create(notification.NewNotificationDTO{ForWhom: "ALL"})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Update", func() {
		var notificationID int64

		BeforeEach(func() {
			created, err := service.Create(notification.NewNotificationDTO{
				Message: "Office closed on Friday",
				ForWhom: "ALL",
			})
			Expect(err).NotTo(HaveOccurred())
			notificationID = created.ID
		})

		It("applies only the provided fields", func() {
			message := "Office closed on Monday instead"
			updated, err := service.Update(notification.UpdateNotificationDTO{
				NotificationID: notificationID,
				Message:        &message,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Message).To(Equal("Office closed on Monday instead"))
			Expect(updated.ForWhom).To(Equal(notification.AudienceAll))
		})

		It("rejects an unknown audience", func() {
			forWhom := "NOBODY"
			_, err := service.Update(notification.UpdateNotificationDTO{
				NotificationID: notificationID,
				ForWhom:        &forWhom,
			})
			Expect(err).To(Equal(notification.ErrInvalidAudience))
		})

		It("returns not found for a missing notification", func() {
			message := "nope"
			_, err := service.Update(notification.UpdateNotificationDTO{
				NotificationID: 999,
				Message:        &message,
			})
			Expect(err).To(Equal(notification.ErrNotificationNotFound))
		})
	})

	Describe("Delete", func() {
		It("removes the notification", func() {
			created, err := service.Create(notification.NewNotificationDTO{
				Message: "Office closed on Friday",
				ForWhom: "ALL",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Delete(created.ID)).To(Succeed())
			Expect(mockRepo.notifications).To(BeEmpty())
		})

		It("returns not found for a missing notification", func() {
			Expect(service.Delete(999)).To(Equal(notification.ErrNotificationNotFound))
		})
	})

	Describe("Audience feeds", func() {
		BeforeEach(func() {
			for _, seed := range []struct{ message, forWhom string }{
				{"broadcast", "ALL"},
				{"staff only", "EMPLOYEE"},
				{"management only", "ADMIN"},
			} {
				_, err := service.Create(notification.NewNotificationDTO{
					Message: seed.message,
					ForWhom: seed.forWhom,
				})
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("shows employees the ALL and EMPLOYEE feeds", func() {
			feed, err := service.ListForEmployees()
			Expect(err).NotTo(HaveOccurred())
			Expect(feed).To(HaveLen(2))
			for _, item := range feed {
				Expect(item.ForWhom).NotTo(Equal(notification.AudienceAdmin))
			}
		})

		It("shows admins the ALL and ADMIN feeds", func() {
			feed, err := service.ListForAdmins()
			Expect(err).NotTo(HaveOccurred())
			Expect(feed).To(HaveLen(2))
			for _, item := range feed {
				Expect(item.ForWhom).NotTo(Equal(notification.AudienceEmployee))
			}
		})
	})

	Describe("HandleLeaveStatusChanged", func() {
		It("records an employee-facing notification", func() {
			event := events.NewLeaveStatusChangedEvent(12, 1, "APPROVED")

			Expect(service.HandleLeaveStatusChanged(context.Background(), event)).To(Succeed())

			feed, err := service.ListForEmployees()
			Expect(err).NotTo(HaveOccurred())
			Expect(feed).To(HaveLen(1))
			Expect(feed[0].Message).To(Equal("Leave request #12 has been APPROVED"))
			Expect(feed[0].ForWhom).To(Equal(notification.AudienceEmployee))
		})

		It("rejects an unexpected payload", func() {
			event := events.BaseEvent{Type: events.EventTypeLeaveStatusChanged}
			Expect(service.HandleLeaveStatusChanged(context.Background(), event)).To(HaveOccurred())
		})
	})
})
