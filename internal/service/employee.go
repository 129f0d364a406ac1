package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roster/internal/core"
	"roster/internal/database/mongodb/model"
	"roster/internal/database/mongodb/repository"
	"roster/internal/dto"
	cErr "roster/internal/pkg/error"
	"roster/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UpdateOutcome 標記部分更新的三種結局，由 handler 決定 HTTP 對應
type UpdateOutcome int

const (
	UpdateApplied UpdateOutcome = iota
	UpdateNotFound
	UpdateNoFields
)

type EmployeeService struct {
	trace        *telemetry.Trace
	employeeRepo *repository.EmployeeRepository
}

func NewEmployeeService(trace *telemetry.Trace, employeeRepo *repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{trace: trace, employeeRepo: employeeRepo}
}

// 新增員工（employee_id 全域唯一，撞鍵回 DuplicateKey）
func (s *EmployeeService) CreateEmployee(ctx context.Context, createDto *dto.CreateEmployeeDto) (*dto.EmployeeResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	joiningDate, err := parseJoiningDate(createDto.JoiningDate)
	if err != nil {
		return nil, cErr.BadRequestParams("joining_date must be YYYY-MM-DD")
	}

	skills := createDto.Skills
	if skills == nil {
		skills = []string{}
	}
	employee := &model.Employee{
		ID:          primitive.NewObjectID(),
		EmployeeID:  createDto.EmployeeID,
		Name:        createDto.Name,
		Department:  createDto.Department,
		Salary:      createDto.Salary,
		JoiningDate: joiningDate,
		Skills:      skills,
	}

	created, err := s.employeeRepo.Create(ctx, employee)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.DuplicateKey(fmt.Sprintf("employee with employee_id %s already exists", createDto.EmployeeID))
		}
		return nil, s.mapRepoError(err, "database CreateEmployee error")
	}
	return modelToEmployeeResponseDto(created), nil
}

// 依 employee_id 查詢
func (s *EmployeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*dto.EmployeeResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employee, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound(fmt.Sprintf("employee with employee_id %s not found", employeeID))
		}
		return nil, s.mapRepoError(err, "database GetEmployeeByID error")
	}
	return modelToEmployeeResponseDto(employee), nil
}

// 部分更新；成功後重新讀取並回傳最新文件。
// 三種結局以 UpdateOutcome 標記，err 僅承載資料庫層錯誤。
func (s *EmployeeService) UpdateEmployeeByID(ctx context.Context, employeeID string, updateDto *dto.UpdateEmployeeDto) (*dto.EmployeeResponseDto, UpdateOutcome, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	update, err := buildUpdateDocument(updateDto)
	if err != nil {
		return nil, UpdateNoFields, cErr.BadRequestParams("joining_date must be YYYY-MM-DD")
	}
	if len(update) == 0 {
		return nil, UpdateNoFields, nil
	}

	matchedCount, err := s.employeeRepo.UpdateByEmployeeID(ctx, employeeID, update)
	if err != nil {
		return nil, UpdateNotFound, s.mapRepoError(err, "database UpdateEmployeeByID error")
	}
	if matchedCount == 0 {
		return nil, UpdateNotFound, nil
	}

	employee, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// 更新與重讀之間被併發刪除
			return nil, UpdateNotFound, nil
		}
		return nil, UpdateNotFound, s.mapRepoError(err, "database UpdateEmployeeByID refetch error")
	}
	return modelToEmployeeResponseDto(employee), UpdateApplied, nil
}

// 依 employee_id 刪除
func (s *EmployeeService) DeleteEmployeeByID(ctx context.Context, employeeID string) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	deletedCount, err := s.employeeRepo.DeleteByEmployeeID(ctx, employeeID)
	if err != nil {
		return s.mapRepoError(err, "database DeleteEmployeeByID error")
	}
	if deletedCount == 0 {
		return cErr.NotFound(fmt.Sprintf("employee with employee_id %s not found", employeeID))
	}
	return nil
}

// 列表（可選部門過濾，到職日新到舊）
func (s *EmployeeService) ListEmployees(ctx context.Context, opts core.ListOptions) (_ []*dto.EmployeeResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	employees, err := s.employeeRepo.List(ctx, opts)
	if err != nil {
		returnedError = s.mapRepoError(err, "database ListEmployees error")
		return nil, returnedError
	}

	s.trace.ApplyTraceAttributes(span, core.TraceEmployeeListMeta{
		Department:  opts.Department,
		Skip:        opts.Skip,
		Limit:       opts.Limit,
		ResultCount: len(employees),
	})
	return modelsToEmployeeResponseDtos(employees), nil
}

// 技能搜尋（整元素比對）
func (s *EmployeeService) SearchEmployeesBySkill(ctx context.Context, opts core.SkillSearchOptions) (_ []*dto.EmployeeResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	employees, err := s.employeeRepo.SearchBySkill(ctx, opts)
	if err != nil {
		returnedError = s.mapRepoError(err, "database SearchEmployeesBySkill error")
		return nil, returnedError
	}

	s.trace.ApplyTraceAttributes(span, core.TraceSkillSearchMeta{
		Skill:           opts.Skill,
		CaseInsensitive: opts.CaseInsensitive,
		ResultCount:     len(employees),
	})
	return modelsToEmployeeResponseDtos(employees), nil
}

// 實驗性游標分頁：回傳 joining_date 早於 before 的一頁
func (s *EmployeeService) ListEmployeesBefore(ctx context.Context, department string, before time.Time, limit int64) ([]*dto.EmployeeResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employees, err := s.employeeRepo.ListBefore(ctx, department, before, limit)
	if err != nil {
		return nil, s.mapRepoError(err, "database ListEmployeesBefore error")
	}
	return modelsToEmployeeResponseDtos(employees), nil
}

// 各部門平均薪資（四捨五入至整數，部門升冪）
func (s *EmployeeService) AverageSalaryByDepartment(ctx context.Context) ([]*dto.DepartmentAvgSalaryDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	rows, err := s.employeeRepo.AverageSalaryByDepartment(ctx)
	if err != nil {
		return nil, s.mapRepoError(err, "database AverageSalaryByDepartment error")
	}
	resp := make([]*dto.DepartmentAvgSalaryDto, len(rows))
	for i, row := range rows {
		resp[i] = &dto.DepartmentAvgSalaryDto{Department: row.Department, AvgSalary: row.AvgSalary}
	}
	return resp, nil
}

// 各部門人數（排程報表用）
func (s *EmployeeService) HeadcountByDepartment(ctx context.Context) ([]*dto.DepartmentHeadcountDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	rows, err := s.employeeRepo.HeadcountByDepartment(ctx)
	if err != nil {
		return nil, s.mapRepoError(err, "database HeadcountByDepartment error")
	}
	resp := make([]*dto.DepartmentHeadcountDto, len(rows))
	for i, row := range rows {
		resp[i] = &dto.DepartmentHeadcountDto{Department: row.Department, Headcount: row.Headcount}
	}
	return resp, nil
}

func (s *EmployeeService) mapRepoError(err error, message string) error {
	if errors.Is(err, repository.ErrNotInitialized) {
		return cErr.NotInitialized(err.Error())
	}
	return cErr.DatabaseError(message)
}

func modelsToEmployeeResponseDtos(employees []*model.Employee) []*dto.EmployeeResponseDto {
	resp := make([]*dto.EmployeeResponseDto, len(employees))
	for i, employee := range employees {
		resp[i] = modelToEmployeeResponseDto(employee)
	}
	return resp
}
