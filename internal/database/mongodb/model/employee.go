package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Employee 員工文件。joining_date 一律以 UTC 零點的 datetime 儲存，
// API 邊界只收/只出 YYYY-MM-DD。
type Employee struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	EmployeeID  string             `json:"employee_id" bson:"employee_id"`
	Name        string             `json:"name" bson:"name"`
	Department  string             `json:"department" bson:"department"`
	Salary      float64            `json:"salary" bson:"salary"`
	JoiningDate time.Time          `json:"joining_date" bson:"joining_date"`
	Skills      []string           `json:"skills" bson:"skills"`
}

var EmployeeIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "employee_id", Value: 1}},
		Options: options.Index().SetName("uniq_employee_id").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "department", Value: 1}},
		Options: options.Index().SetName("idx_department"),
	},
	{
		Keys:    bson.D{{Key: "skills", Value: 1}},
		Options: options.Index().SetName("idx_skills"),
	},
	{
		Keys:    bson.D{{Key: "joining_date", Value: -1}},
		Options: options.Index().SetName("idx_joining_date_desc"),
	},
}

// EmployeeValidator 選用的 $jsonSchema 驗證器，由 setup-db 指令安裝
var EmployeeValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"employee_id", "name", "department", "salary", "joining_date", "skills"},
		"properties": bson.M{
			"employee_id":  bson.M{"bsonType": "string"},
			"name":         bson.M{"bsonType": "string"},
			"department":   bson.M{"bsonType": "string"},
			"salary":       bson.M{"bsonType": "double"},
			"joining_date": bson.M{"bsonType": "date"},
			"skills": bson.M{
				"bsonType": "array",
				"items":    bson.M{"bsonType": "string"},
			},
		},
	},
}
