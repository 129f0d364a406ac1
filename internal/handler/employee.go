package handler

import (
	"time"

	"roster/internal/core"
	"roster/internal/dto"
	cErr "roster/internal/pkg/error"
	"roster/internal/pkg/response"
	"roster/internal/service"
	"roster/internal/telemetry"
	"roster/utils/validate"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 500
)

type EmployeeHandler struct {
	trace           *telemetry.Trace
	employeeService *service.EmployeeService
}

func NewEmployeeHandler(trace *telemetry.Trace, employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{trace: trace, employeeService: employeeService}
}

// Create 新增員工
// @Summary 新增員工
// @Tags Employee
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateEmployeeDto true "員工資訊"
// @Success 201 {object} dto.EmployeeResponseDto
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.CreateEmployeeDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.employeeService.CreateEmployee(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// Get 取得員工
// @Summary 依 employee_id 取得員工
// @Tags Employee
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponseDto
// @Failure 404 {object} map[string]string
// @Router /employees/{employeeID} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employeeID := c.Param("employeeID")
	if employeeID == "" {
		response.AbortWithError(c, cErr.ValidatePathParamsErr("employeeID is required"))
		return
	}

	employee, err := h.employeeService.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, employee)
}

// Update 部分更新員工
// @Summary 部分更新員工（employee_id 不可變更）
// @Tags Employee
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param body body dto.UpdateEmployeeDto true "欲更新欄位"
// @Success 200 {object} dto.EmployeeResponseDto
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /employees/{employeeID} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employeeID := c.Param("employeeID")
	if employeeID == "" {
		response.AbortWithError(c, cErr.ValidatePathParamsErr("employeeID is required"))
		return
	}

	var req dto.UpdateEmployeeDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	employee, outcome, err := h.employeeService.UpdateEmployeeByID(ctx, employeeID, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	switch outcome {
	case service.UpdateNoFields:
		response.AbortWithError(c, cErr.NoUpdateFields("request carries no updatable fields"))
	case service.UpdateNotFound:
		response.AbortWithError(c, cErr.NotFound("employee with employee_id "+employeeID+" not found"))
	default:
		response.Success(c, employee)
	}
}

// Delete 刪除員工
// @Summary 依 employee_id 刪除員工
// @Tags Employee
// @Security BearerAuth
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /employees/{employeeID} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employeeID := c.Param("employeeID")
	if employeeID == "" {
		response.AbortWithError(c, cErr.ValidatePathParamsErr("employeeID is required"))
		return
	}

	if err := h.employeeService.DeleteEmployeeByID(ctx, employeeID); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "employee deleted"})
}

// List 員工列表
// @Summary 員工列表（可依部門過濾，到職日新到舊）
// @Tags Employee
// @Produce json
// @Param department query string false "部門"
// @Param skip query int false "略過筆數"
// @Param limit query int false "每頁筆數（上限 500）"
// @Success 200 {array} dto.EmployeeResponseDto
// @Failure 400 {object} map[string]string
// @Router /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	opts, err := parseListOptions(c)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	employees, svcErr := h.employeeService.ListEmployees(ctx, opts)
	if svcErr != nil {
		response.AbortWithError(c, svcErr)
		return
	}
	response.Success(c, employees)
}

// Search 技能搜尋
// @Summary 依技能搜尋員工（整元素比對）
// @Tags Employee
// @Produce json
// @Param skill query string true "技能"
// @Param case_insensitive query bool false "忽略大小寫"
// @Param skip query int false "略過筆數"
// @Param limit query int false "每頁筆數（上限 500）"
// @Success 200 {array} dto.EmployeeResponseDto
// @Failure 400 {object} map[string]string
// @Router /employees/search [get]
func (h *EmployeeHandler) Search(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	skill := c.Query("skill")
	if skill == "" {
		response.AbortWithError(c, cErr.BadRequestParams("skill query parameter is required"))
		return
	}
	caseInsensitive, err := validate.GetBoolQuery(c, "case_insensitive", false)
	if err != nil {
		response.AbortWithError(c, cErr.BadRequestParams("case_insensitive must be a boolean"))
		return
	}
	listOpts, optsErr := parseListOptions(c)
	if optsErr != nil {
		end(optsErr)
		response.AbortWithError(c, optsErr)
		return
	}

	employees, svcErr := h.employeeService.SearchEmployeesBySkill(ctx, core.SkillSearchOptions{
		Skill:           skill,
		CaseInsensitive: caseInsensitive,
		Skip:            listOpts.Skip,
		Limit:           listOpts.Limit,
	})
	if svcErr != nil {
		response.AbortWithError(c, svcErr)
		return
	}
	response.Success(c, employees)
}

// AvgSalary 各部門平均薪資
// @Summary 各部門平均薪資（四捨五入到整數，部門升冪）
// @Tags Employee
// @Produce json
// @Success 200 {array} dto.DepartmentAvgSalaryDto
// @Router /employees/avg-salary [get]
func (h *EmployeeHandler) AvgSalary(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	rows, err := h.employeeService.AverageSalaryByDepartment(ctx)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, rows)
}

// ListByCursor 游標分頁列表
// @Summary 以到職日為游標的員工列表（實驗性）
// @Tags Employee
// @Produce json
// @Param before query string false "回傳到職日早於此日期（YYYY-MM-DD，預設今天）"
// @Param department query string false "部門"
// @Param limit query int false "每頁筆數（上限 500）"
// @Success 200 {array} dto.EmployeeResponseDto
// @Failure 400 {object} map[string]string
// @Router /employees/cursor [get]
func (h *EmployeeHandler) ListByCursor(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	before := time.Now().UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)
	if raw := c.Query("before"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.AbortWithError(c, cErr.BadRequestParams("before must be YYYY-MM-DD"))
			return
		}
		before = parsed
	}
	listOpts, optsErr := parseListOptions(c)
	if optsErr != nil {
		end(optsErr)
		response.AbortWithError(c, optsErr)
		return
	}

	employees, err := h.employeeService.ListEmployeesBefore(ctx, c.Query("department"), before, listOpts.Limit)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, employees)
}

// parseListOptions 解析共用的 department/skip/limit 查詢參數並套用界限
func parseListOptions(c *gin.Context) (core.ListOptions, error) {
	skip, err := validate.GetInt64Query(c, "skip", 0)
	if err != nil || skip < 0 {
		return core.ListOptions{}, cErr.BadRequestParams("skip must be a non-negative integer")
	}
	limit, err := validate.GetInt64Query(c, "limit", defaultPageLimit)
	if err != nil || limit < 1 {
		return core.ListOptions{}, cErr.BadRequestParams("limit must be a positive integer")
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return core.ListOptions{
		Department: c.Query("department"),
		Skip:       skip,
		Limit:      limit,
	}, nil
}
