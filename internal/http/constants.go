package httpx

// CurrentPage constants define the page identifiers used in templates and navigation.
// These constants ensure consistency across UI handlers and template mapping.
const (
	// Main navigation pages.
	PageHome      = "home"
	PageDashboard = "dashboard"

	// Auth pages.
	PageLogin     = "login"
	PageRegister  = "register"
	PageSignedOut = "signed-out"

	// Account-related pages.
	PageAccounts    = "accounts"
	PageAccountView = "account-view"
	PageAccountForm = "account-form"

	// Transaction pages.
	PageDeposit         = "deposit"
	PageWithdraw        = "withdraw"
	PageTransfer        = "transfer"
	PageTransactions    = "transactions"
	PageTransactionView = "transaction-view"

	// Profile page.
	PageProfile = "profile"

	// Admin console pages.
	PageAdmin         = "admin"
	PageAdminUsers    = "admin-users"
	PageAdminUserForm = "admin-user-form"
	PageAdminAccounts = "admin-accounts"

	// Error pages.
	PageNotFound = "not-found"
)

// FormMode represents the mode of a form (create or edit).
// Using a dedicated type improves compile-time checks and prevents typos.
type FormMode string

const (
	// FormModeEdit indicates the form is in edit mode.
	FormModeEdit FormMode = "edit"
	// FormModeCreate indicates the form is in create mode.
	FormModeCreate FormMode = "create"
)

// Content templates are defined once and reused to avoid per-call allocations.
//
//nolint:gochecknoglobals // static read-only lookup for templates; avoids per-call allocations
var contentTemplates = map[string]string{
	PageHome:            "dashboard-content",
	PageDashboard:       "dashboard-content",
	PageLogin:           "login-content",
	PageRegister:        "register-content",
	PageSignedOut:       "signed-out-content",
	PageAccounts:        "accounts-content",
	PageAccountView:     "account-view-content",
	PageAccountForm:     "account-form-content",
	PageDeposit:         "deposit-content",
	PageWithdraw:        "withdraw-content",
	PageTransfer:        "transfer-content",
	PageTransactions:    "transactions-list-content",
	PageTransactionView: "transaction-view-content",
	PageProfile:         "profile-content",
	PageAdmin:           "admin-content",
	PageAdminUsers:      "admin-users-content",
	PageAdminUserForm:   "admin-user-form-content",
	PageAdminAccounts:   "admin-accounts-content",
	PageNotFound:        "not-found-content",
}

// ContentTemplateMap returns the mapping from CurrentPage to template name.
// This is the single source of truth for page-to-template mapping.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to dashboard-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := ContentTemplateMap()[currentPage]; ok {
		return name
	}
	return "dashboard-content"
}
