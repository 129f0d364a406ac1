package dto

// 建立員工
type CreateEmployeeDto struct {
	EmployeeID  string   `json:"employee_id" binding:"required"`                     // 業務主鍵，全域唯一
	Name        string   `json:"name" binding:"required"`                            // 姓名
	Department  string   `json:"department" binding:"required"`                      // 部門
	Salary      float64  `json:"salary" binding:"required,gte=0"`                    // 薪資
	JoiningDate string   `json:"joining_date" binding:"required,datetime=2006-01-02"` // 到職日 YYYY-MM-DD
	Skills      []string `json:"skills" binding:"required"`                          // 技能（可為空陣列）
}

// 更新員工（部分更新；employee_id 不可變更）
type UpdateEmployeeDto struct {
	Name        *string   `json:"name,omitempty"`
	Department  *string   `json:"department,omitempty"`
	Salary      *float64  `json:"salary,omitempty" binding:"omitempty,gte=0"`
	JoiningDate *string   `json:"joining_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Skills      *[]string `json:"skills,omitempty"`
}

type EmployeeResponseDto struct {
	ID          string   `json:"id"`
	EmployeeID  string   `json:"employee_id"`
	Name        string   `json:"name"`
	Department  string   `json:"department"`
	Salary      float64  `json:"salary"`
	JoiningDate string   `json:"joining_date"` // YYYY-MM-DD
	Skills      []string `json:"skills"`
}

type DepartmentAvgSalaryDto struct {
	Department string  `json:"department"`
	AvgSalary  float64 `json:"avg_salary"`
}

type DepartmentHeadcountDto struct {
	Department string `json:"department"`
	Headcount  int64  `json:"headcount"`
}
