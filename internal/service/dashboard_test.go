package service_test

import (
	"sep-workflow/internal/models"
	"sep-workflow/internal/service"
	"sep-workflow/internal/testinfra"
	"sep-workflow/internal/workflow"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("DashboardManager", func() {
	var (
		db  *gorm.DB
		svc *service.Services
		s   *staff

		pending, running *models.Project
	)

	BeforeEach(func() {
		db = testinfra.StartTestDatabase()
		svc = service.New(db, workflow.RecruitmentRules{AllowBypass: true})
		s = hireStaff(db)

		testinfra.CreateRawRequest(db, "Untouched", 100)
		draft := testinfra.CreateRawRequest(db, "Drafted", 100)
		_, err := svc.Projects.SaveFromRawRequest(ctx, s.cse, draft.ID, service.ProjectInput{Title: "Drafted"}, workflow.ActionSaveDraft)
		Expect(err).To(BeNil())
		pending = publish(svc, s, db, "Waiting")
		running = approve(svc, s, db, "Running")
	})

	AfterEach(func() {
		testinfra.StopTestDatabase(db)
	})

	projectIDs := func(v interface{}) []uint {
		var ids []uint
		for _, p := range v.([]models.Project) {
			ids = append(ids, p.ID)
		}
		return ids
	}

	It("shows customer service the requests still to convert and their own history", func() {
		board, err := svc.Dashboards.Dashboard(ctx, s.cse)
		Expect(err).To(BeNil())

		var titles []string
		for _, r := range board["raw_requests"].([]models.RawRequest) {
			titles = append(titles, r.Title)
		}
		Expect(titles).To(ConsistOf("Untouched", "Drafted"))
		Expect(projectIDs(board["project_history"])).To(ConsistOf(pending.ID, running.ID))

		other, err := svc.Dashboards.Dashboard(ctx, s.cse2)
		Expect(err).To(BeNil())
		Expect(other["project_history"]).To(BeEmpty())
	})

	It("shows each reviewer their queue", func() {
		board, err := svc.Dashboards.Dashboard(ctx, s.csm)
		Expect(err).To(BeNil())
		Expect(projectIDs(board["waiting_approval"])).To(ConsistOf(pending.ID))
		Expect(projectIDs(board["project_history"])).To(ConsistOf(running.ID))

		board, err = svc.Dashboards.Dashboard(ctx, s.fim)
		Expect(err).To(BeNil())
		Expect(board["waiting_feedback"]).To(BeEmpty())
		Expect(projectIDs(board["project_history"])).To(ConsistOf(running.ID))
		Expect(board).To(HaveKey("financial_requests"))

		board, err = svc.Dashboards.Dashboard(ctx, s.adm)
		Expect(err).To(BeNil())
		Expect(board["waiting_approval"]).To(BeEmpty())
		Expect(projectIDs(board["project_history"])).To(ConsistOf(running.ID))
	})

	It("shows managers staffed projects and their teams", func() {
		board, err := svc.Dashboards.Dashboard(ctx, s.sdm)
		Expect(err).To(BeNil())
		Expect(projectIDs(board["projects"])).To(ConsistOf(running.ID))
		teams := board["teams"].([]models.Team)
		Expect(teams).To(HaveLen(1))
		Expect(teams[0].Name).To(Equal("Kitchen"))
	})

	It("shows employees their tasks", func() {
		_, err := svc.Tasks.AssignTask(ctx, s.sdm, service.TaskInput{
			ProjectID: running.ID, TeamID: s.kitchen.ID, AssigneeID: s.cook.ID,
			Subject: "Chop onions", DueDate: testinfra.Tomorrow(),
		})
		Expect(err).To(BeNil())

		board, err := svc.Dashboards.Dashboard(ctx, s.cook)
		Expect(err).To(BeNil())
		Expect(board["tasks"]).To(HaveLen(1))
		Expect(projectIDs(board["projects"])).To(ConsistOf(running.ID))
	})

	It("shows HR the campaigns by stage", func() {
		post, err := svc.Recruitment.CreateRecruitmentPost(ctx, s.sdm, service.RecruitmentPostInput{
			ContractType: models.ContractPartTime, Department: models.DepartmentService, Title: "Waiter",
		})
		Expect(err).To(BeNil())
		_, err = svc.Recruitment.CreateRecruitmentPost(ctx, s.pdm, service.RecruitmentPostInput{
			ContractType: models.ContractIntern, Department: models.DepartmentProduction, Title: "Intern",
		})
		Expect(err).To(BeNil())
		_, err = svc.Recruitment.AdvanceRecruitment(ctx, s.hrm, post.ID, workflow.ActionStartCampaign)
		Expect(err).To(BeNil())

		board, err := svc.Dashboards.Dashboard(ctx, s.hrm)
		Expect(err).To(BeNil())
		Expect(board["pending_campaigns"]).To(HaveLen(1))
		Expect(board["ongoing_campaigns"]).To(HaveLen(1))
	})
})
