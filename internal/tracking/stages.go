package tracking

// Logical stage date fields on a unified order. Repositories map both the
// legacy and the current schema onto these names.
const (
	FieldIntake         = "intake_date"
	FieldPlanning       = "planning_date"
	FieldVerification   = "verification_date"
	FieldRelease        = "release_date"
	FieldResultDelivery = "result_delivery_date"
	FieldResultReceipt  = "result_receipt_date"
	FieldBilling        = "billing_date"
)

// Upstream-precomputed SLA tag fields.
const (
	TagVerificationSLA = "verification_sla"
	TagReleaseSLA      = "release_sla"
)

// Display labels for each stage. A stage label doubles as the "current
// stage" of an order whose most advanced set milestone is that stage.
const (
	StageReceived        = "Received"
	StagePlanned         = "Planned"
	StageVerified        = "Verified"
	StageReleased        = "Released"
	StageResultDelivered = "Result Delivered"
	StageResultReceived  = "Result Received"
	StageBilled          = "Billed"
)

// StageDefinition describes one step of the workflow. MaxDays is the day
// budget for the transition into this stage from the previous stage (or from
// order creation for the first stage). SLAField names an upstream-precomputed
// status column when the store already tags the stage.
type StageDefinition struct {
	Name      string
	DateField string
	SLAField  string
	MaxDays   *int
}

var stageCatalog = []StageDefinition{
	{Name: StageReceived, DateField: FieldIntake, MaxDays: intPtr(2)},
	{Name: StagePlanned, DateField: FieldPlanning, MaxDays: intPtr(3)},
	{Name: StageVerified, DateField: FieldVerification, SLAField: TagVerificationSLA, MaxDays: intPtr(5)},
	{Name: StageReleased, DateField: FieldRelease, SLAField: TagReleaseSLA, MaxDays: intPtr(2)},
	{Name: StageResultDelivered, DateField: FieldResultDelivery, MaxDays: intPtr(3)},
	{Name: StageResultReceived, DateField: FieldResultReceipt},
	{Name: StageBilled, DateField: FieldBilling, MaxDays: intPtr(7)},
}

// Catalog returns the ordered workflow stages. The slice is shared; callers
// must not mutate it.
func Catalog() []StageDefinition {
	return stageCatalog
}

func intPtr(n int) *int {
	return &n
}
