package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mkaraca/task-tracker-api/internal/models"
	"github.com/mkaraca/task-tracker-api/internal/repository"
	"github.com/mkaraca/task-tracker-api/internal/services"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.User{}, &models.Task{})
	suite.Require().NoError(err)

	service := services.NewTaskService(
		repository.NewTaskRepository(suite.db),
		repository.NewUserRepository(suite.db),
	)
	taskHandler := NewTaskHandler(service)
	userHandler := NewUserHandler(service)

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.GET("/users", userHandler.ListUsers)
	suite.router.GET("/tasks", taskHandler.ListTasks)
	suite.router.POST("/tasks", taskHandler.CreateTask)
	suite.router.PATCH("/tasks/:id", taskHandler.UpdateTask)
	suite.router.DELETE("/tasks/:id", taskHandler.DeleteTask)
}

// TearDownTest runs after each test
func (suite *TaskHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper function to create test data
func (suite *TaskHandlerTestSuite) createTestUser(name string) *models.User {
	user := &models.User{Name: name}
	suite.db.Create(user)
	return user
}

func (suite *TaskHandlerTestSuite) createTestTask(title string, completed bool, priority models.Priority) *models.Task {
	task := &models.Task{Title: title, Completed: completed, Priority: priority}
	suite.db.Create(task)
	return task
}

func (suite *TaskHandlerTestSuite) request(method, url string, body any) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		encoded, err := json.Marshal(body)
		suite.Require().NoError(err)
		req = httptest.NewRequest(method, url, bytes.NewReader(encoded))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TaskHandlerTestSuite) decodeTasks(w *httptest.ResponseRecorder) []map[string]any {
	var tasks []map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &tasks))
	return tasks
}

func (suite *TaskHandlerTestSuite) TestListUsers() {
	suite.createTestUser("Harry")
	suite.createTestUser("John")

	w := suite.request("GET", "/users", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var users []map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &users))
	suite.Require().Len(users, 2)
	assert.Equal(suite.T(), "Harry", users[0]["name"])
}

func (suite *TaskHandlerTestSuite) TestListTasks_NoFilters() {
	suite.createTestTask("First", false, models.PriorityMedium)
	suite.createTestTask("Second", true, models.PriorityLow)

	w := suite.request("GET", "/tasks", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	tasks := suite.decodeTasks(w)
	suite.Require().Len(tasks, 2)
	assert.Equal(suite.T(), "First", tasks[0]["title"])
	assert.Equal(suite.T(), "Unassigned", tasks[0]["assignee_name"])
}

func (suite *TaskHandlerTestSuite) TestListTasks_ConjunctiveFilters() {
	suite.createTestTask("Grade quiz", false, models.PriorityHigh)
	suite.createTestTask("Plan session", true, models.PriorityLow)
	suite.createTestTask("Mark essays", true, models.PriorityHigh)

	w := suite.request("GET", "/tasks?status=incomplete&priority=high", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	tasks := suite.decodeTasks(w)
	suite.Require().Len(tasks, 1)
	assert.Equal(suite.T(), "Grade quiz", tasks[0]["title"])
}

func (suite *TaskHandlerTestSuite) TestListTasks_SearchInsensitive() {
	suite.createTestTask("Write REPORT", false, models.PriorityMedium)
	suite.createTestTask("Other", false, models.PriorityMedium)

	w := suite.request("GET", "/tasks?search=report", nil)

	tasks := suite.decodeTasks(w)
	suite.Require().Len(tasks, 1)
	assert.Equal(suite.T(), "Write REPORT", tasks[0]["title"])
}

func (suite *TaskHandlerTestSuite) TestListTasks_UnknownFilterValue() {
	w := suite.request("GET", "/tasks?status=done", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_Success() {
	user := suite.createTestUser("Harry")

	w := suite.request("POST", "/tasks", map[string]any{
		"title":       "New Task",
		"description": "Details",
		"assignee_id": user.ID,
		"priority":    "high",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(suite.T(), response, "id")

	var stored models.Task
	suite.Require().NoError(suite.db.First(&stored, uint64(response["id"].(float64))).Error)
	assert.Equal(suite.T(), "New Task", stored.Title)
	assert.Equal(suite.T(), models.PriorityHigh, stored.Priority)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_BlankTitle() {
	w := suite.request("POST", "/tasks", map[string]any{"title": "   "})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_UnknownAssignee() {
	w := suite.request("POST", "/tasks", map[string]any{
		"title":       "New Task",
		"assignee_id": 99,
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_Success() {
	task := suite.createTestTask("Old Title", false, models.PriorityMedium)

	w := suite.request("PATCH", "/tasks/1", map[string]any{
		"title":     "Updated Title",
		"completed": true,
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), true, response["ok"])

	var stored models.Task
	suite.db.First(&stored, task.ID)
	assert.Equal(suite.T(), "Updated Title", stored.Title)
	assert.True(suite.T(), stored.Completed)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_NullDueDate() {
	task := suite.createTestTask("Task with Due Date", false, models.PriorityMedium)
	suite.db.Model(task).Update("due_date", "2030-01-01")

	w := suite.request("PATCH", "/tasks/1", map[string]any{"due_date": nil})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var stored models.Task
	suite.db.First(&stored, task.ID)
	assert.Nil(suite.T(), stored.DueDate)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_NotFound() {
	w := suite.request("PATCH", "/tasks/404", map[string]any{"title": "x"})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestDeleteTask_Success() {
	task := suite.createTestTask("Task to Delete", false, models.PriorityMedium)

	w := suite.request("DELETE", "/tasks/1", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), true, response["ok"])

	var deleted models.Task
	err := suite.db.First(&deleted, task.ID).Error
	assert.Error(suite.T(), err)
}

func (suite *TaskHandlerTestSuite) TestDeleteTask_NotFound() {
	w := suite.request("DELETE", "/tasks/404", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestSuite runs the test suite
func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
