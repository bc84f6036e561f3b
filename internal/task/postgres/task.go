package postgres

import (
	employeeDatamodel "office-management/internal/core/datamodel/employee"
	taskDatamodel "office-management/internal/core/datamodel/task"

	"gorm.io/gorm"
)

// TaskRepository implements task.RepositoryAPI using GORM. Writes that touch
// both the task row and its assignment rows run inside a transaction.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateWithAssignments(record *taskDatamodel.Task, employeeIDs []int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		return createAssignments(tx, record.ID, employeeIDs)
	})
}

func (r *TaskRepository) GetByID(id int64) (*taskDatamodel.Task, error) {
	var record taskDatamodel.Task
	if err := r.db.Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *TaskRepository) Update(record *taskDatamodel.Task) error {
	return r.db.Save(record).Error
}

func (r *TaskRepository) UpdateWithAssignments(record *taskDatamodel.Task, employeeIDs []int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(record).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", record.ID).
			Delete(&taskDatamodel.TaskAssignment{}).Error; err != nil {
			return err
		}
		return createAssignments(tx, record.ID, employeeIDs)
	})
}

func (r *TaskRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).
			Delete(&taskDatamodel.TaskAssignment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&taskDatamodel.Task{}).Error
	})
}

func (r *TaskRepository) ListAll() ([]*taskDatamodel.Task, error) {
	var records []*taskDatamodel.Task
	err := r.db.Order("created_at DESC").Find(&records).Error
	return records, err
}

func (r *TaskRepository) ListByEmployee(employeeID int64) ([]*taskDatamodel.Task, error) {
	var records []*taskDatamodel.Task
	err := r.db.
		Joins("JOIN task_assignments ON task_assignments.task_id = tasks.id").
		Where("task_assignments.employee_id = ?", employeeID).
		Order("tasks.created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *TaskRepository) AssigneeIDs(taskID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&taskDatamodel.TaskAssignment{}).
		Where("task_id = ?", taskID).
		Order("employee_id").
		Pluck("employee_id", &ids).Error
	return ids, err
}

func (r *TaskRepository) EmployeeEmails(employeeIDs []int64) ([]string, error) {
	if len(employeeIDs) == 0 {
		return []string{}, nil
	}
	var emails []string
	err := r.db.Model(&employeeDatamodel.Employee{}).
		Where("id IN ?", employeeIDs).
		Order("id").
		Pluck("email", &emails).Error
	return emails, err
}

func (r *TaskRepository) EmployeesExist(employeeIDs []int64) (bool, error) {
	employeeIDs = dedupeIDs(employeeIDs)
	if len(employeeIDs) == 0 {
		return true, nil
	}
	var count int64
	err := r.db.Model(&employeeDatamodel.Employee{}).
		Where("id IN ?", employeeIDs).
		Count(&count).Error
	return count == int64(len(employeeIDs)), err
}

// dedupeIDs drops repeated ids; a repeated assignee would violate the
// unique (task_id, employee_id) pair.
func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func createAssignments(tx *gorm.DB, taskID int64, employeeIDs []int64) error {
	employeeIDs = dedupeIDs(employeeIDs)
	if len(employeeIDs) == 0 {
		return nil
	}
	assignments := make([]taskDatamodel.TaskAssignment, 0, len(employeeIDs))
	for _, employeeID := range employeeIDs {
		assignments = append(assignments, taskDatamodel.TaskAssignment{
			TaskID:     taskID,
			EmployeeID: employeeID,
		})
	}
	return tx.Create(&assignments).Error
}
