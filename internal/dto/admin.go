package dto

import "time"

type AdminUserResponseDTO struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role" example:"USER"`
	Points    int       `json:"points" example:"500"`
	IsMember  bool      `json:"is_member"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminUserListResponseDTO struct {
	Users []AdminUserResponseDTO `json:"users"`
	Total int                    `json:"total"`
}

type UpdateUserRequestDTO struct {
	Role   *string `json:"role,omitempty" enums:"USER,ADMIN,SUPER_ADMIN"`
	Points *int    `json:"points,omitempty"`
}

type ScriptVersionRequestDTO struct {
	Version     string `json:"version" example:"1.2.0"`
	DownloadURL string `json:"download_url"`
	Notes       string `json:"notes,omitempty"`
}

type ScriptRequestDTO struct {
	Title        string                    `json:"title"`
	ResourceName string                    `json:"resource_name"`
	Description  string                    `json:"description"`
	PricePoints  int                       `json:"price_points"`
	Status       string                    `json:"status" enums:"DRAFT,ACTIVE,INACTIVE"`
	Features     []string                  `json:"features"`
	Requirements []string                  `json:"requirements"`
	Versions     []ScriptVersionRequestDTO `json:"versions"`
}

// AdminScriptVersionDTO includes the download link; only admins see it.
type AdminScriptVersionDTO struct {
	Version     string    `json:"version"`
	DownloadURL string    `json:"download_url"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type AdminScriptResponseDTO struct {
	ID           int                     `json:"id"`
	Title        string                  `json:"title"`
	ResourceName string                  `json:"resource_name"`
	Description  string                  `json:"description"`
	PricePoints  int                     `json:"price_points"`
	Status       string                  `json:"status"`
	Features     []string                `json:"features"`
	Requirements []string                `json:"requirements"`
	Versions     []AdminScriptVersionDTO `json:"versions,omitempty"`
}

type AdminPaymentResponseDTO struct {
	ID            int        `json:"id"`
	UserID        int        `json:"user_id"`
	Amount        float64    `json:"amount"`
	Points        int        `json:"points"`
	Method        string     `json:"method"`
	ProofImage    string     `json:"proof_image"`
	ReferenceCode string     `json:"reference_code"`
	Status        string     `json:"status"`
	AdminNote     string     `json:"admin_note,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
}

type ReviewPaymentRequestDTO struct {
	Note string `json:"note"`
}

type AdminPurchaseResponseDTO struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	ResourceName string    `json:"resource_name"`
	Title        string    `json:"title"`
	PricePaid    int       `json:"price_paid"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type PointsPackageRequestDTO struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Points      int     `json:"points"`
	BonusPoints int     `json:"bonus_points"`
	IsActive    bool    `json:"is_active"`
}

type DashboardResponseDTO struct {
	Users          int     `json:"users" example:"120"`
	Purchases      int     `json:"purchases" example:"310"`
	Scripts        int     `json:"scripts" example:"14"`
	ApprovedAmount float64 `json:"approved_amount" example:"10450.50"`
}
