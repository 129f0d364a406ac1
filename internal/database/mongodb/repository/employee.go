package repository

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"roster/config"
	"roster/internal/core"
	client "roster/internal/database/client"
	"roster/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DepartmentAverage 是 avg-salary 聚合的輸出列
type DepartmentAverage struct {
	Department string  `bson:"department" json:"department"`
	AvgSalary  float64 `bson:"avg_salary" json:"avg_salary"`
}

// DepartmentHeadcount 是排程報表用的人數統計列
type DepartmentHeadcount struct {
	Department string `bson:"department" json:"department"`
	Headcount  int64  `bson:"headcount" json:"headcount"`
}

type EmployeeRepository struct {
	collection *mongo.Collection
}

func NewEmployeeRepository(mongoClient *client.MongoClient, conf *config.Configuration) *EmployeeRepository {
	repository := &EmployeeRepository{
		collection: mongoClient.Client().
			Database(conf.MongoDB.DatabaseName()).
			Collection(conf.MongoDB.CollectionName()),
	}
	_ = repository.EnsureIndexes(context.Background())
	return repository
}

// EnsureIndexes 建立唯一鍵與查詢索引（冪等，存在即跳過）
func (repository *EmployeeRepository) EnsureIndexes(contextValue context.Context) error {
	coll, err := repository.coll()
	if err != nil {
		return err
	}
	_, err = coll.Indexes().CreateMany(contextValue, model.EmployeeIndexes)
	return err
}

// EnsureValidator 安裝 $jsonSchema 驗證器；collection 不存在時改以 create 建立。
// 由 setup-db 指令呼叫，非啟動必要步驟。
func (repository *EmployeeRepository) EnsureValidator(contextValue context.Context) error {
	coll, err := repository.coll()
	if err != nil {
		return err
	}
	db := coll.Database()
	modCmd := bson.D{
		{Key: "collMod", Value: coll.Name()},
		{Key: "validator", Value: model.EmployeeValidator},
		{Key: "validationLevel", Value: "moderate"},
	}
	if err := db.RunCommand(contextValue, modCmd).Err(); err != nil {
		createOpts := options.CreateCollection().SetValidator(model.EmployeeValidator)
		return db.CreateCollection(contextValue, coll.Name(), createOpts)
	}
	return nil
}

func (repository *EmployeeRepository) coll() (*mongo.Collection, error) {
	if repository == nil || repository.collection == nil {
		return nil, ErrNotInitialized
	}
	return repository.collection, nil
}

func (repository *EmployeeRepository) Create(contextValue context.Context, employee *model.Employee) (_ *model.Employee, returnedError error) {
	coll, err := repository.coll()
	if err != nil {
		return nil, err
	}
	if employee.ID.IsZero() {
		employee.ID = primitive.NewObjectID()
	}
	insertResult, insertError := coll.InsertOne(contextValue, employee)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	employee.ID = objectID
	return employee, nil
}

func (repository *EmployeeRepository) GetByEmployeeID(contextValue context.Context, employeeID string) (_ *model.Employee, returnedError error) {
	coll, err := repository.coll()
	if err != nil {
		return nil, err
	}
	var employee model.Employee
	if returnedError = coll.FindOne(contextValue, bson.M{"employee_id": employeeID}).Decode(&employee); returnedError != nil {
		return nil, returnedError
	}
	return &employee, nil
}

// UpdateByEmployeeID 以 $set 套用部分更新；回傳 MatchedCount（0 表示不存在）。
// employee_id 本身不可透過 update 變動，由 service 層保證 update 內容不含該欄位。
func (repository *EmployeeRepository) UpdateByEmployeeID(contextValue context.Context, employeeID string, update bson.M) (returnedCount int64, returnedError error) {
	coll, err := repository.coll()
	if err != nil {
		return 0, err
	}
	result, updateError := coll.UpdateOne(contextValue, bson.M{"employee_id": employeeID}, bson.M{"$set": update})
	if updateError != nil {
		return 0, updateError
	}
	return result.MatchedCount, nil
}

func (repository *EmployeeRepository) DeleteByEmployeeID(contextValue context.Context, employeeID string) (returnedCount int64, returnedError error) {
	coll, err := repository.coll()
	if err != nil {
		return 0, err
	}
	result, deleteError := coll.DeleteOne(contextValue, bson.M{"employee_id": employeeID})
	if deleteError != nil {
		return 0, deleteError
	}
	return result.DeletedCount, nil
}

// List 依（可選）部門過濾，joining_date 新到舊排序，skip/limit 分頁
func (repository *EmployeeRepository) List(contextValue context.Context, opts core.ListOptions) (_ []*model.Employee, returnedError error) {
	return repository.find(contextValue, listFilter(opts.Department), pageFindOptions(opts.Skip, opts.Limit))
}

// SearchBySkill 搜尋 skills 陣列中含有指定元素的員工（整元素比對，非子字串）
func (repository *EmployeeRepository) SearchBySkill(contextValue context.Context, opts core.SkillSearchOptions) (_ []*model.Employee, returnedError error) {
	return repository.find(contextValue, skillFilter(opts.Skill, opts.CaseInsensitive), pageFindOptions(opts.Skip, opts.Limit))
}

// ListBefore 以 joining_date 作為游標的實驗性分頁：回傳 joining_date < before 的文件
func (repository *EmployeeRepository) ListBefore(contextValue context.Context, department string, before time.Time, limit int64) (_ []*model.Employee, returnedError error) {
	return repository.find(contextValue, cursorFilter(department, before), pageFindOptions(0, limit))
}

func (repository *EmployeeRepository) find(contextValue context.Context, filter bson.M, findOptions *options.FindOptions) (_ []*model.Employee, returnedError error) {
	coll, err := repository.coll()
	if err != nil {
		return nil, err
	}
	cursor, findError := coll.Find(contextValue, filter, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	results := []*model.Employee{}
	for cursor.Next(contextValue) {
		var employee model.Employee
		if decodeError := cursor.Decode(&employee); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &employee)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

// AverageSalaryByDepartment 各部門平均薪資，四捨五入到整數，部門名稱升冪
func (repository *EmployeeRepository) AverageSalaryByDepartment(contextValue context.Context) (_ []DepartmentAverage, returnedError error) {
	coll, err := repository.coll()
	if err != nil {
		return nil, err
	}
	cursor, aggError := coll.Aggregate(contextValue, averageSalaryPipeline())
	if aggError != nil {
		return nil, aggError
	}
	defer cursor.Close(contextValue)

	results := []DepartmentAverage{}
	if returnedError = cursor.All(contextValue, &results); returnedError != nil {
		return nil, returnedError
	}
	return results, nil
}

// HeadcountByDepartment 各部門人數，部門名稱升冪（排程報表用）
func (repository *EmployeeRepository) HeadcountByDepartment(contextValue context.Context) (_ []DepartmentHeadcount, returnedError error) {
	coll, err := repository.coll()
	if err != nil {
		return nil, err
	}
	cursor, aggError := coll.Aggregate(contextValue, headcountPipeline())
	if aggError != nil {
		return nil, aggError
	}
	defer cursor.Close(contextValue)

	results := []DepartmentHeadcount{}
	if returnedError = cursor.All(contextValue, &results); returnedError != nil {
		return nil, returnedError
	}
	return results, nil
}

// ---- 純查詢建構（無 I/O，可直接單元測試）----

func listFilter(department string) bson.M {
	filter := bson.M{}
	if department != "" {
		filter["department"] = department
	}
	return filter
}

// skillFilter 預設整元素精確比對；caseInsensitive 時改用錨定的 $elemMatch regex，
// skill 內容先經 QuoteMeta 避免被當成 pattern。
func skillFilter(skill string, caseInsensitive bool) bson.M {
	if !caseInsensitive {
		return bson.M{"skills": skill}
	}
	return bson.M{"skills": bson.M{"$elemMatch": bson.M{
		"$regex":   "^" + regexp.QuoteMeta(skill) + "$",
		"$options": "i",
	}}}
}

func cursorFilter(department string, before time.Time) bson.M {
	filter := bson.M{"joining_date": bson.M{"$lt": before}}
	if department != "" {
		filter["department"] = department
	}
	return filter
}

func pageFindOptions(skip, limit int64) *options.FindOptions {
	findOptions := options.Find().SetSort(bson.D{{Key: "joining_date", Value: -1}})
	if skip > 0 {
		findOptions.SetSkip(skip)
	}
	if limit > 0 {
		findOptions.SetLimit(limit)
	}
	return findOptions
}

func averageSalaryPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":        "$department",
			"avg_salary": bson.M{"$avg": "$salary"},
		}}},
		{{Key: "$project", Value: bson.M{
			"department": "$_id",
			"avg_salary": bson.M{"$round": bson.A{"$avg_salary", 0}},
			"_id":        0,
		}}},
		{{Key: "$sort", Value: bson.M{"department": 1}}},
	}
}

func headcountPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":       "$department",
			"headcount": bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{
			"department": "$_id",
			"headcount":  1,
			"_id":        0,
		}}},
		{{Key: "$sort", Value: bson.M{"department": 1}}},
	}
}
