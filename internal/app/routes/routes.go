package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/senatehub/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	assignmentController *controllers.AssignmentController,
	committeeController *controllers.CommitteeController,
	facultyController *controllers.FacultyController,
	slotRequirementController *controllers.SlotRequirementController,
	senateDivisionController *controllers.SenateDivisionController,
	departmentController *controllers.DepartmentController,
	associationController *controllers.AssociationController,
	surveyController *controllers.SurveyController,
) {
	api := router.Group("/api")

	// Committee assignment routes (admission-controlled)
	assignments := api.Group("/committee-assignment")
	{
		assignments.POST("", assignmentController.CreateAssignment)
		assignments.PUT("", assignmentController.UpdateAssignment)
		assignments.DELETE("/:id/:email", assignmentController.DeleteAssignment)
		assignments.GET("/committee/:id", assignmentController.GetAssignmentsByCommittee)
		assignments.GET("/faculty/:email", assignmentController.GetAssignmentsByFaculty)
	}

	// Committee routes
	api.GET("/committees", committeeController.GetAllCommittees)
	committee := api.Group("/committee")
	{
		committee.POST("", committeeController.CreateCommittee)
		committee.PUT("/:id", committeeController.UpdateCommittee)
		committee.GET("/:id", committeeController.GetCommitteeByID)
	}

	// Faculty routes
	api.GET("/faculty", facultyController.GetAllFaculty)
	faculty := api.Group("/faculty")
	{
		faculty.POST("", facultyController.CreateFaculty)
		faculty.PUT("", facultyController.UpdateFaculty)
		faculty.GET("/:email", facultyController.GetFacultyByEmail)
	}

	// Slot requirement routes
	slots := api.Group("/committee-slots")
	{
		slots.POST("", slotRequirementController.CreateSlotRequirement)
		slots.PUT("/:id/:name", slotRequirementController.UpdateSlotRequirement)
		slots.DELETE("/:id/:name", slotRequirementController.DeleteSlotRequirement)
		slots.GET("/committee/:id", slotRequirementController.GetByCommittee)
		slots.GET("/senate-division/:shortname", slotRequirementController.GetBySenateDivision)
	}

	// Senate division reference routes
	api.GET("/senate-divisions", senateDivisionController.GetAllSenateDivisions)
	api.GET("/senate-division/:shortname", senateDivisionController.GetSenateDivision)

	// Department reference routes
	api.GET("/departments", departmentController.GetAllDepartments)
	api.GET("/department/:id", departmentController.GetDepartmentByID)

	// Department association routes
	associations := api.Group("/department-associations")
	{
		associations.POST("", associationController.CreateAssociation)
		associations.PUT("", associationController.UpdateAssociation)
		associations.GET("/faculty/:email", associationController.GetAssociationsByFaculty)
		associations.GET("/department/:id", associationController.GetAssociationsByDepartment)
	}

	// Survey data routes
	survey := api.Group("/survey-data")
	{
		survey.POST("", surveyController.CreateSurveyResponse)
		survey.PUT("", surveyController.UpdateSurveyResponse)
		survey.GET("/:year/:email", surveyController.GetSurveyResponse)
	}
}
