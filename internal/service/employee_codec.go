package service

import (
	"time"

	"roster/internal/database/mongodb/model"
	"roster/internal/dto"

	"go.mongodb.org/mongo-driver/bson"
)

const joiningDateLayout = "2006-01-02"

// parseJoiningDate 解析 YYYY-MM-DD 為 UTC 零點 datetime（入庫格式）
func parseJoiningDate(value string) (time.Time, error) {
	parsed, err := time.Parse(joiningDateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
}

func formatJoiningDate(value time.Time) string {
	return value.UTC().Format(joiningDateLayout)
}

func modelToEmployeeResponseDto(employee *model.Employee) *dto.EmployeeResponseDto {
	skills := employee.Skills
	if skills == nil {
		skills = []string{}
	}
	return &dto.EmployeeResponseDto{
		ID:          employee.ID.Hex(),
		EmployeeID:  employee.EmployeeID,
		Name:        employee.Name,
		Department:  employee.Department,
		Salary:      employee.Salary,
		JoiningDate: formatJoiningDate(employee.JoiningDate),
		Skills:      skills,
	}
}

// buildUpdateDocument 將部分更新 DTO 轉成 $set 文件；nil 欄位一律略過。
// 回傳空 map 代表請求未帶任何可更新欄位。
func buildUpdateDocument(updateDto *dto.UpdateEmployeeDto) (bson.M, error) {
	update := bson.M{}
	if updateDto == nil {
		return update, nil
	}
	if updateDto.Name != nil {
		update["name"] = *updateDto.Name
	}
	if updateDto.Department != nil {
		update["department"] = *updateDto.Department
	}
	if updateDto.Salary != nil {
		update["salary"] = *updateDto.Salary
	}
	if updateDto.JoiningDate != nil {
		joiningDate, err := parseJoiningDate(*updateDto.JoiningDate)
		if err != nil {
			return nil, err
		}
		update["joining_date"] = joiningDate
	}
	if updateDto.Skills != nil {
		skills := *updateDto.Skills
		if skills == nil {
			skills = []string{}
		}
		update["skills"] = skills
	}
	return update, nil
}
