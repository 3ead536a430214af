package permission

// Group names referenced by route and menu configuration.
const (
	// System Administration permissions
	GroupSystemAdmin          GroupName = "SYSTEM_ADMIN"
	GroupUserManagement       GroupName = "USER_MANAGEMENT"
	GroupRoleManagement       GroupName = "ROLE_MANAGEMENT"
	GroupPermissionManagement GroupName = "PERMISSION_MANAGEMENT"
	GroupAuditAccess          GroupName = "AUDIT_ACCESS"
	GroupSystemConfig         GroupName = "SYSTEM_CONFIG"
	GroupConfigManagement     GroupName = "CONFIG_MANAGEMENT"
	GroupDelegationAccess     GroupName = "DELEGATION_ACCESS"

	// Personnel Information permissions
	GroupPersonnelBasic        GroupName = "PERSONNEL_BASIC"
	GroupPersonnelFull         GroupName = "PERSONNEL_FULL"
	GroupEmploymentRecords     GroupName = "EMPLOYMENT_RECORDS"
	GroupMembershipData        GroupName = "MEMBERSHIP_DATA"
	GroupDesignationManagement GroupName = "DESIGNATION_MANAGEMENT"
	GroupEmploymentHistory     GroupName = "EMPLOYMENT_HISTORY"
	GroupPersonnelAdmin        GroupName = "PERSONNEL_ADMIN"
	GroupCustomFields          GroupName = "CUSTOM_FIELDS"

	// Merit and Violations
	GroupMeritManagement     GroupName = "MERIT_MANAGEMENT"
	GroupViolationManagement GroupName = "VIOLATION_MANAGEMENT"
	GroupAdminCaseManagement GroupName = "ADMIN_CASE_MANAGEMENT"

	// Request Management permissions
	GroupRequestBasic         GroupName = "REQUEST_BASIC"
	GroupRequestManagement    GroupName = "REQUEST_MANAGEMENT"
	GroupLeaveRequestFull     GroupName = "LEAVE_REQUEST_FULL"
	GroupDTRAdjustmentFull    GroupName = "DTR_ADJUSTMENT_FULL"
	GroupCertificationRequest GroupName = "CERTIFICATION_REQUEST"

	// Employee Self-Service permissions
	GroupEmployeeSelfService GroupName = "EMPLOYEE_SELF_SERVICE"
	GroupEmployeeProfile     GroupName = "EMPLOYEE_PROFILE"
	GroupEmployeeRequests    GroupName = "EMPLOYEE_REQUESTS"
	GroupEmployeeReports     GroupName = "EMPLOYEE_REPORTS"

	// Timekeeping & Attendance permissions
	GroupAttendanceBasic    GroupName = "ATTENDANCE_BASIC"
	GroupAttendanceFull     GroupName = "ATTENDANCE_FULL"
	GroupScheduleBasic      GroupName = "SCHEDULE_BASIC"
	GroupScheduleManagement GroupName = "SCHEDULE_MANAGEMENT"
	GroupDTRAdjustment      GroupName = "DTR_ADJUSTMENT"
	GroupDTRReports         GroupName = "DTR_REPORTS"

	// Payroll Management permissions
	GroupPayrollBasic      GroupName = "PAYROLL_BASIC"
	GroupPayrollFull       GroupName = "PAYROLL_FULL"
	GroupSalaryAdjustments GroupName = "SALARY_ADJUSTMENTS"
	GroupLoanBasic         GroupName = "LOAN_BASIC"
	GroupLoanManagement    GroupName = "LOAN_MANAGEMENT"
	GroupPayrollOperations GroupName = "PAYROLL_OPERATIONS"

	// Leave Management permissions
	GroupLeaveBasic          GroupName = "LEAVE_BASIC"
	GroupLeaveTypeBasic      GroupName = "LEAVE_TYPE_BASIC"
	GroupLeaveTypeManagement GroupName = "LEAVE_TYPE_MANAGEMENT"
	GroupLeaveBalanceBasic   GroupName = "LEAVE_BALANCE_BASIC"
	GroupLeaveBalanceFull    GroupName = "LEAVE_BALANCE_FULL"
	GroupLeaveReports        GroupName = "LEAVE_REPORTS"

	// Recruitment permissions
	GroupRecruitmentBasic  GroupName = "RECRUITMENT_BASIC"
	GroupApplicantFull     GroupName = "APPLICANT_FULL"
	GroupJobPostingFull    GroupName = "JOB_POSTING_FULL"
	GroupApplicationFull   GroupName = "APPLICATION_FULL"
	GroupInterviewSchedule GroupName = "INTERVIEW_SCHEDULE"

	// Performance Management permissions
	GroupPerformanceBasic   GroupName = "PERFORMANCE_BASIC"
	GroupPerformanceFull    GroupName = "PERFORMANCE_FULL"
	GroupKPIManagement      GroupName = "KPI_MANAGEMENT"
	GroupPerformanceReports GroupName = "PERFORMANCE_REPORTS"

	// Report Generation permissions
	GroupReportBasic    GroupName = "REPORT_BASIC"
	GroupReportFull     GroupName = "REPORT_FULL"
	GroupReportExport   GroupName = "REPORT_EXPORT"
	GroupReportTemplate GroupName = "REPORT_TEMPLATE"

	// Learning & Development permissions
	GroupLearningBasic       GroupName = "LEARNING_BASIC"
	GroupTrainingProgramFull GroupName = "TRAINING_PROGRAM_FULL"
	GroupTrainingMaterial    GroupName = "TRAINING_MATERIAL"
	GroupTrainingEnrollment  GroupName = "TRAINING_ENROLLMENT"
	GroupTrainingReports     GroupName = "TRAINING_REPORTS"

	// Health & Wellness permissions (no specific permissions, accessible to all)
	GroupHealthWellness GroupName = "HEALTH_WELLNESS"

	// Public Access (no permissions required)
	GroupPublicAccess GroupName = "PUBLIC_ACCESS"
)

var groups = map[GroupName][]Permission{
	// System Administration permissions
	GroupSystemAdmin:          {UserRead, RoleRead, PermissionRead},
	GroupUserManagement:       {UserRead, UserCreate, UserUpdate, UserDelete},
	GroupRoleManagement:       {RoleRead, RoleCreate, RoleUpdate, RoleDelete},
	GroupPermissionManagement: {PermissionRead, PermissionCreate, PermissionUpdate, PermissionDelete},
	GroupAuditAccess:          {AuditLogRead, AuditTrailRead},
	GroupSystemConfig:         {ParameterRead, ParameterCreate, ParameterUpdate, ParameterDelete},
	GroupConfigManagement:     {ConfigRead, ConfigCreate, ConfigUpdate, ConfigDelete},
	GroupDelegationAccess:     {DelegationRead, SystemLoginRead},

	// Personnel Information permissions
	GroupPersonnelBasic:        {EmployeeRead},
	GroupPersonnelFull:         {EmployeeRead, EmployeeCreate, EmployeeUpdate, EmployeeDelete},
	GroupEmploymentRecords:     {EmploymentRecordRead, EmploymentRecordCreate, EmploymentRecordUpdate, EmploymentRecordDelete},
	GroupMembershipData:        {MembershipDataRead, MembershipDataCreate, MembershipDataUpdate, MembershipDataDelete},
	GroupDesignationManagement: {DesignationRead, DesignationCreate, DesignationUpdate, DesignationDelete},
	GroupEmploymentHistory:     {EmploymentHistoryRead, EmploymentHistoryCreate, EmploymentHistoryUpdate, EmploymentHistoryDelete},
	GroupPersonnelAdmin:        {EmployeeRead, EmploymentRecordRead, MembershipDataRead},
	GroupCustomFields:          {CustomFieldRead, CustomFieldCreate, CustomFieldUpdate, CustomFieldDelete},

	// Merit and Violations
	GroupMeritManagement:     {MeritRead, MeritCreate, MeritUpdate, MeritDelete},
	GroupViolationManagement: {ViolationRead, ViolationCreate, ViolationUpdate, ViolationDelete},
	GroupAdminCaseManagement: {AdminCaseRead, AdminCaseCreate, AdminCaseUpdate, AdminCaseDelete},

	// Request Management permissions
	GroupRequestBasic:         {RequestRead},
	GroupRequestManagement:    {RequestRead, RequestCreate, RequestUpdate, RequestDelete},
	GroupLeaveRequestFull:     {LeaveRequestRead, LeaveRequestCreate, LeaveRequestUpdate, LeaveRequestDelete},
	GroupDTRAdjustmentFull:    {DTRAdjustmentRead, DTRAdjustmentCreate, DTRAdjustmentUpdate, DTRAdjustmentDelete},
	GroupCertificationRequest: {CertificationRequestRead, CertificationRequestCreate, CertificationRequestUpdate, CertificationRequestDelete},

	// Employee Self-Service permissions
	GroupEmployeeSelfService: {},
	GroupEmployeeProfile:     {EmployeeRead},
	GroupEmployeeRequests:    {RequestRead, LeaveRequestRead},
	GroupEmployeeReports:     {ReportRead},

	// Timekeeping & Attendance permissions
	GroupAttendanceBasic:    {AttendanceLogRead},
	GroupAttendanceFull:     {AttendanceLogRead, AttendanceLogCreate, AttendanceLogUpdate, AttendanceLogDelete},
	GroupScheduleBasic:      {ScheduleRead},
	GroupScheduleManagement: {ScheduleRead, ScheduleCreate, ScheduleUpdate, ScheduleDelete},
	GroupDTRAdjustment:      {DTRAdjustmentRead, DTRAdjustmentCreate, DTRAdjustmentUpdate, DTRAdjustmentDelete},
	GroupDTRReports:         {DTRReportRead, DTRReportGenerate},

	// Payroll Management permissions
	GroupPayrollBasic:      {PayrollRecordRead},
	GroupPayrollFull:       {PayrollRecordRead, PayrollRecordCreate, PayrollRecordUpdate, PayrollRecordDelete},
	GroupSalaryAdjustments: {SalaryAdjustmentRead, SalaryAdjustmentCreate, SalaryAdjustmentUpdate, SalaryAdjustmentDelete},
	GroupLoanBasic:         {LoanBalanceRead},
	GroupLoanManagement:    {LoanBalanceRead, LoanBalanceCreate, LoanBalanceUpdate, LoanBalanceDelete},
	GroupPayrollOperations: {PayrollRecordCreate, PayrollRecordUpdate},

	// Leave Management permissions
	GroupLeaveBasic:          {LeaveRequestRead, LeaveBalanceRead},
	GroupLeaveTypeBasic:      {LeaveTypeRead},
	GroupLeaveTypeManagement: {LeaveTypeRead, LeaveTypeCreate, LeaveTypeUpdate, LeaveTypeDelete},
	GroupLeaveBalanceBasic:   {LeaveBalanceRead},
	GroupLeaveBalanceFull:    {LeaveBalanceRead, LeaveBalanceCreate, LeaveBalanceUpdate, LeaveBalanceDelete},
	GroupLeaveReports:        {LeaveReportRead, LeaveReportGenerate},

	// Recruitment permissions
	GroupRecruitmentBasic:  {ApplicantRead, JobPostingRead},
	GroupApplicantFull:     {ApplicantRead, ApplicantCreate, ApplicantUpdate, ApplicantDelete},
	GroupJobPostingFull:    {JobPostingRead, JobPostingCreate, JobPostingUpdate, JobPostingDelete},
	GroupApplicationFull:   {ApplicationRead, ApplicationCreate, ApplicationUpdate, ApplicationDelete},
	GroupInterviewSchedule: {InterviewScheduleRead, InterviewScheduleCreate, InterviewScheduleUpdate, InterviewScheduleDelete},

	// Performance Management permissions
	GroupPerformanceBasic:   {PerformanceReviewRead},
	GroupPerformanceFull:    {PerformanceReviewRead, PerformanceReviewCreate, PerformanceReviewUpdate, PerformanceReviewDelete},
	GroupKPIManagement:      {KPIRead, KPICreate, KPIUpdate, KPIDelete},
	GroupPerformanceReports: {PerformanceReportRead, PerformanceReportGenerate},

	// Report Generation permissions
	GroupReportBasic:    {ReportRead},
	GroupReportFull:     {ReportRead, ReportGenerate},
	GroupReportExport:   {ReportExportRead},
	GroupReportTemplate: {ReportTemplateRead, ReportTemplateGenerate},

	// Learning & Development permissions
	GroupLearningBasic:       {TrainingProgramRead, TrainingEnrollmentRead},
	GroupTrainingProgramFull: {TrainingProgramRead, TrainingProgramCreate, TrainingProgramUpdate, TrainingProgramDelete},
	GroupTrainingMaterial:    {TrainingMaterialRead, TrainingMaterialCreate, TrainingMaterialUpdate, TrainingMaterialDelete},
	GroupTrainingEnrollment:  {TrainingEnrollmentRead, TrainingEnrollmentCreate, TrainingEnrollmentUpdate, TrainingEnrollmentDelete},
	GroupTrainingReports:     {TrainingReportRead, TrainingReportGenerate},

	// Health & Wellness permissions (no specific permissions, accessible to all)
	GroupHealthWellness: {},

	// Public Access (no permissions required)
	GroupPublicAccess: {},
}

var groupOrder = []GroupName{
	GroupSystemAdmin, GroupUserManagement, GroupRoleManagement, GroupPermissionManagement,
	GroupAuditAccess, GroupSystemConfig, GroupConfigManagement, GroupDelegationAccess,
	GroupPersonnelBasic, GroupPersonnelFull, GroupEmploymentRecords, GroupMembershipData,
	GroupDesignationManagement, GroupEmploymentHistory, GroupPersonnelAdmin, GroupCustomFields,
	GroupMeritManagement, GroupViolationManagement, GroupAdminCaseManagement, GroupRequestBasic,
	GroupRequestManagement, GroupLeaveRequestFull, GroupDTRAdjustmentFull, GroupCertificationRequest,
	GroupEmployeeSelfService, GroupEmployeeProfile, GroupEmployeeRequests, GroupEmployeeReports,
	GroupAttendanceBasic, GroupAttendanceFull, GroupScheduleBasic, GroupScheduleManagement,
	GroupDTRAdjustment, GroupDTRReports, GroupPayrollBasic, GroupPayrollFull,
	GroupSalaryAdjustments, GroupLoanBasic, GroupLoanManagement, GroupPayrollOperations,
	GroupLeaveBasic, GroupLeaveTypeBasic, GroupLeaveTypeManagement, GroupLeaveBalanceBasic,
	GroupLeaveBalanceFull, GroupLeaveReports, GroupRecruitmentBasic, GroupApplicantFull,
	GroupJobPostingFull, GroupApplicationFull, GroupInterviewSchedule, GroupPerformanceBasic,
	GroupPerformanceFull, GroupKPIManagement, GroupPerformanceReports, GroupReportBasic,
	GroupReportFull, GroupReportExport, GroupReportTemplate, GroupLearningBasic,
	GroupTrainingProgramFull, GroupTrainingMaterial, GroupTrainingEnrollment, GroupTrainingReports,
	GroupHealthWellness, GroupPublicAccess,
}
