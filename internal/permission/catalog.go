package permission

// Catalog tokens. Each one is declared in exactly one category below.
const (
	// Personnel Information
	EmployeeCreate          Permission = "employee_create"
	EmployeeRead            Permission = "employee_read"
	EmployeeUpdate          Permission = "employee_update"
	EmployeeDelete          Permission = "employee_delete"
	EmploymentRecordCreate  Permission = "employment_record_create"
	EmploymentRecordRead    Permission = "employment_record_read"
	EmploymentRecordUpdate  Permission = "employment_record_update"
	EmploymentRecordDelete  Permission = "employment_record_delete"
	MembershipDataCreate    Permission = "membership_data_create"
	MembershipDataRead      Permission = "membership_data_read"
	MembershipDataUpdate    Permission = "membership_data_update"
	MembershipDataDelete    Permission = "membership_data_delete"
	DesignationCreate       Permission = "designation_create"
	DesignationRead         Permission = "designation_read"
	DesignationUpdate       Permission = "designation_update"
	DesignationDelete       Permission = "designation_delete"
	EmploymentHistoryCreate Permission = "employment_history_create"
	EmploymentHistoryRead   Permission = "employment_history_read"
	EmploymentHistoryUpdate Permission = "employment_history_update"
	EmploymentHistoryDelete Permission = "employment_history_delete"
	MeritCreate             Permission = "merit_create"
	MeritRead               Permission = "merit_read"
	MeritUpdate             Permission = "merit_update"
	MeritDelete             Permission = "merit_delete"
	ViolationCreate         Permission = "violation_create"
	ViolationRead           Permission = "violation_read"
	ViolationUpdate         Permission = "violation_update"
	ViolationDelete         Permission = "violation_delete"
	AdminCaseCreate         Permission = "admin_case_create"
	AdminCaseRead           Permission = "admin_case_read"
	AdminCaseUpdate         Permission = "admin_case_update"
	AdminCaseDelete         Permission = "admin_case_delete"
	CustomFieldCreate       Permission = "custom_field_create"
	CustomFieldRead         Permission = "custom_field_read"
	CustomFieldUpdate       Permission = "custom_field_update"
	CustomFieldDelete       Permission = "custom_field_delete"

	// Requests
	RequestCreate              Permission = "request_create"
	RequestRead                Permission = "request_read"
	RequestUpdate              Permission = "request_update"
	RequestDelete              Permission = "request_delete"
	LeaveRequestCreate         Permission = "leave_request_create"
	LeaveRequestRead           Permission = "leave_request_read"
	LeaveRequestUpdate         Permission = "leave_request_update"
	LeaveRequestDelete         Permission = "leave_request_delete"
	DTRAdjustmentCreate        Permission = "dtr_adjustment_create"
	DTRAdjustmentRead          Permission = "dtr_adjustment_read"
	DTRAdjustmentUpdate        Permission = "dtr_adjustment_update"
	DTRAdjustmentDelete        Permission = "dtr_adjustment_delete"
	CertificationRequestCreate Permission = "certification_request_create"
	CertificationRequestRead   Permission = "certification_request_read"
	CertificationRequestUpdate Permission = "certification_request_update"
	CertificationRequestDelete Permission = "certification_request_delete"

	// Timekeeping & Attendance
	AttendanceLogCreate Permission = "attendance_log_create"
	AttendanceLogRead   Permission = "attendance_log_read"
	AttendanceLogUpdate Permission = "attendance_log_update"
	AttendanceLogDelete Permission = "attendance_log_delete"
	ScheduleCreate      Permission = "schedule_create"
	ScheduleRead        Permission = "schedule_read"
	ScheduleUpdate      Permission = "schedule_update"
	ScheduleDelete      Permission = "schedule_delete"
	DTRReportRead       Permission = "dtr_report_read"
	DTRReportGenerate   Permission = "dtr_report_generate"

	// Payroll Management
	PayrollRecordCreate    Permission = "payroll_record_create"
	PayrollRecordRead      Permission = "payroll_record_read"
	PayrollRecordUpdate    Permission = "payroll_record_update"
	PayrollRecordDelete    Permission = "payroll_record_delete"
	SalaryAdjustmentCreate Permission = "salary_adjustment_create"
	SalaryAdjustmentRead   Permission = "salary_adjustment_read"
	SalaryAdjustmentUpdate Permission = "salary_adjustment_update"
	SalaryAdjustmentDelete Permission = "salary_adjustment_delete"
	LoanBalanceCreate      Permission = "loan_balance_create"
	LoanBalanceRead        Permission = "loan_balance_read"
	LoanBalanceUpdate      Permission = "loan_balance_update"
	LoanBalanceDelete      Permission = "loan_balance_delete"

	// Leave Management
	LeaveTypeCreate     Permission = "leave_type_create"
	LeaveTypeRead       Permission = "leave_type_read"
	LeaveTypeUpdate     Permission = "leave_type_update"
	LeaveTypeDelete     Permission = "leave_type_delete"
	LeaveBalanceCreate  Permission = "leave_balance_create"
	LeaveBalanceRead    Permission = "leave_balance_read"
	LeaveBalanceUpdate  Permission = "leave_balance_update"
	LeaveBalanceDelete  Permission = "leave_balance_delete"
	LeaveReportRead     Permission = "leave_report_read"
	LeaveReportGenerate Permission = "leave_report_generate"

	// Recruitment
	ApplicantCreate         Permission = "applicant_create"
	ApplicantRead           Permission = "applicant_read"
	ApplicantUpdate         Permission = "applicant_update"
	ApplicantDelete         Permission = "applicant_delete"
	JobPostingCreate        Permission = "job_posting_create"
	JobPostingRead          Permission = "job_posting_read"
	JobPostingUpdate        Permission = "job_posting_update"
	JobPostingDelete        Permission = "job_posting_delete"
	ApplicationCreate       Permission = "application_create"
	ApplicationRead         Permission = "application_read"
	ApplicationUpdate       Permission = "application_update"
	ApplicationDelete       Permission = "application_delete"
	InterviewScheduleCreate Permission = "interview_schedule_create"
	InterviewScheduleRead   Permission = "interview_schedule_read"
	InterviewScheduleUpdate Permission = "interview_schedule_update"
	InterviewScheduleDelete Permission = "interview_schedule_delete"

	// Performance Management
	PerformanceReviewCreate   Permission = "performance_review_create"
	PerformanceReviewRead     Permission = "performance_review_read"
	PerformanceReviewUpdate   Permission = "performance_review_update"
	PerformanceReviewDelete   Permission = "performance_review_delete"
	KPICreate                 Permission = "kpi_create"
	KPIRead                   Permission = "kpi_read"
	KPIUpdate                 Permission = "kpi_update"
	KPIDelete                 Permission = "kpi_delete"
	PerformanceReportRead     Permission = "performance_report_read"
	PerformanceReportGenerate Permission = "performance_report_generate"

	// Report Generation
	ReportRead             Permission = "report_read"
	ReportGenerate         Permission = "report_generate"
	ReportExportRead       Permission = "report_export_read"
	ReportTemplateRead     Permission = "report_template_read"
	ReportTemplateGenerate Permission = "report_template_generate"
	AuditTrailRead         Permission = "audit_trail_read"

	// Learning & Development
	TrainingProgramCreate    Permission = "training_program_create"
	TrainingProgramRead      Permission = "training_program_read"
	TrainingProgramUpdate    Permission = "training_program_update"
	TrainingProgramDelete    Permission = "training_program_delete"
	TrainingMaterialCreate   Permission = "training_material_create"
	TrainingMaterialRead     Permission = "training_material_read"
	TrainingMaterialUpdate   Permission = "training_material_update"
	TrainingMaterialDelete   Permission = "training_material_delete"
	TrainingEnrollmentCreate Permission = "training_enrollment_create"
	TrainingEnrollmentRead   Permission = "training_enrollment_read"
	TrainingEnrollmentUpdate Permission = "training_enrollment_update"
	TrainingEnrollmentDelete Permission = "training_enrollment_delete"
	TrainingReportRead       Permission = "training_report_read"
	TrainingReportGenerate   Permission = "training_report_generate"

	// System Administration
	UserCreate       Permission = "user_create"
	UserRead         Permission = "user_read"
	UserUpdate       Permission = "user_update"
	UserDelete       Permission = "user_delete"
	RoleCreate       Permission = "role_create"
	RoleRead         Permission = "role_read"
	RoleUpdate       Permission = "role_update"
	RoleDelete       Permission = "role_delete"
	PermissionCreate Permission = "permission_create"
	PermissionRead   Permission = "permission_read"
	PermissionUpdate Permission = "permission_update"
	PermissionDelete Permission = "permission_delete"
	ParameterCreate  Permission = "parameter_create"
	ParameterRead    Permission = "parameter_read"
	ParameterUpdate  Permission = "parameter_update"
	ParameterDelete  Permission = "parameter_delete"
	ConfigCreate     Permission = "config_create"
	ConfigRead       Permission = "config_read"
	ConfigUpdate     Permission = "config_update"
	ConfigDelete     Permission = "config_delete"
	AuditLogRead     Permission = "audit_log_read"
	DelegationRead   Permission = "delegation_read"
	SystemLoginRead  Permission = "system_login_read"
)

var catalog = []CategoryPermissions{
	{Category: CategoryPersonnelInformation, Permissions: []Permission{
		EmployeeCreate, EmployeeRead, EmployeeUpdate, EmployeeDelete,
		EmploymentRecordCreate, EmploymentRecordRead, EmploymentRecordUpdate, EmploymentRecordDelete,
		MembershipDataCreate, MembershipDataRead, MembershipDataUpdate, MembershipDataDelete,
		DesignationCreate, DesignationRead, DesignationUpdate, DesignationDelete,
		EmploymentHistoryCreate, EmploymentHistoryRead, EmploymentHistoryUpdate, EmploymentHistoryDelete,
		MeritCreate, MeritRead, MeritUpdate, MeritDelete,
		ViolationCreate, ViolationRead, ViolationUpdate, ViolationDelete,
		AdminCaseCreate, AdminCaseRead, AdminCaseUpdate, AdminCaseDelete,
		CustomFieldCreate, CustomFieldRead, CustomFieldUpdate, CustomFieldDelete,
	}},
	{Category: CategoryRequests, Permissions: []Permission{
		RequestCreate, RequestRead, RequestUpdate, RequestDelete,
		LeaveRequestCreate, LeaveRequestRead, LeaveRequestUpdate, LeaveRequestDelete,
		DTRAdjustmentCreate, DTRAdjustmentRead, DTRAdjustmentUpdate, DTRAdjustmentDelete,
		CertificationRequestCreate, CertificationRequestRead, CertificationRequestUpdate, CertificationRequestDelete,
	}},
	{Category: CategoryTimekeeping, Permissions: []Permission{
		AttendanceLogCreate, AttendanceLogRead, AttendanceLogUpdate, AttendanceLogDelete,
		ScheduleCreate, ScheduleRead, ScheduleUpdate, ScheduleDelete,
		DTRReportRead, DTRReportGenerate,
	}},
	{Category: CategoryPayroll, Permissions: []Permission{
		PayrollRecordCreate, PayrollRecordRead, PayrollRecordUpdate, PayrollRecordDelete,
		SalaryAdjustmentCreate, SalaryAdjustmentRead, SalaryAdjustmentUpdate, SalaryAdjustmentDelete,
		LoanBalanceCreate, LoanBalanceRead, LoanBalanceUpdate, LoanBalanceDelete,
	}},
	{Category: CategoryLeave, Permissions: []Permission{
		LeaveTypeCreate, LeaveTypeRead, LeaveTypeUpdate, LeaveTypeDelete,
		LeaveBalanceCreate, LeaveBalanceRead, LeaveBalanceUpdate, LeaveBalanceDelete,
		LeaveReportRead, LeaveReportGenerate,
	}},
	{Category: CategoryRecruitment, Permissions: []Permission{
		ApplicantCreate, ApplicantRead, ApplicantUpdate, ApplicantDelete,
		JobPostingCreate, JobPostingRead, JobPostingUpdate, JobPostingDelete,
		ApplicationCreate, ApplicationRead, ApplicationUpdate, ApplicationDelete,
		InterviewScheduleCreate, InterviewScheduleRead, InterviewScheduleUpdate, InterviewScheduleDelete,
	}},
	{Category: CategoryPerformance, Permissions: []Permission{
		PerformanceReviewCreate, PerformanceReviewRead, PerformanceReviewUpdate, PerformanceReviewDelete,
		KPICreate, KPIRead, KPIUpdate, KPIDelete,
		PerformanceReportRead, PerformanceReportGenerate,
	}},
	{Category: CategoryReports, Permissions: []Permission{
		ReportRead, ReportGenerate, ReportExportRead, ReportTemplateRead,
		ReportTemplateGenerate, AuditTrailRead,
	}},
	{Category: CategoryLearning, Permissions: []Permission{
		TrainingProgramCreate, TrainingProgramRead, TrainingProgramUpdate, TrainingProgramDelete,
		TrainingMaterialCreate, TrainingMaterialRead, TrainingMaterialUpdate, TrainingMaterialDelete,
		TrainingEnrollmentCreate, TrainingEnrollmentRead, TrainingEnrollmentUpdate, TrainingEnrollmentDelete,
		TrainingReportRead, TrainingReportGenerate,
	}},
	{Category: CategorySystemAdministration, Permissions: []Permission{
		UserCreate, UserRead, UserUpdate, UserDelete,
		RoleCreate, RoleRead, RoleUpdate, RoleDelete,
		PermissionCreate, PermissionRead, PermissionUpdate, PermissionDelete,
		ParameterCreate, ParameterRead, ParameterUpdate, ParameterDelete,
		ConfigCreate, ConfigRead, ConfigUpdate, ConfigDelete,
		AuditLogRead, DelegationRead, SystemLoginRead,
	}},
}
