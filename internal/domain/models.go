package domain

import "time"

const (
	RoleUser       string = "USER"
	RoleAdmin      string = "ADMIN"
	RoleSuperAdmin string = "SUPER_ADMIN"
)

type User struct {
	ID           int       `db:"id"`
	ExternalID   string    `db:"external_id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Avatar       string    `db:"avatar"`
	Role         string    `db:"role"`
	Points       int       `db:"points"`
	PasswordHash string    `db:"password_hash"`
	IsMember     bool      `db:"is_member"`
	CreatedAt    time.Time `db:"created_at"`
}

type Script struct {
	ID           int             `db:"id"`
	Title        string          `db:"title"`
	ResourceName string          `db:"resource_name"`
	Description  string          `db:"description"`
	PricePoints  int             `db:"price_points"`
	Status       string          `db:"status"`
	Features     []string        `db:"features"`
	Requirements []string        `db:"requirements"`
	Versions     []ScriptVersion `db:"-"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

type ScriptVersion struct {
	ID          int       `db:"id"`
	ScriptID    int       `db:"script_id"`
	Version     string    `db:"version"`
	DownloadURL string    `db:"download_url"`
	Notes       string    `db:"notes"`
	CreatedAt   time.Time `db:"created_at"`
}

type Payment struct {
	ID            int        `db:"id"`
	UserID        int        `db:"user_id"`
	Amount        float64    `db:"amount"`
	Points        int        `db:"points"`
	Method        string     `db:"method"`
	ProofImage    string     `db:"proof_image"`
	ReferenceCode string     `db:"reference_code"`
	Status        string     `db:"status"`
	AdminNote     string     `db:"admin_note"`
	CreatedAt     time.Time  `db:"created_at"`
	ProcessedAt   *time.Time `db:"processed_at"`
}

type Purchase struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	ScriptID  int       `db:"script_id"`
	PricePaid int       `db:"price_paid"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

type ServerIP struct {
	ID           int        `db:"id"`
	UserID       int        `db:"user_id"`
	ResourceName string     `db:"resource_name"`
	IPAddress    string     `db:"ip_address"`
	LicenseKey   string     `db:"license_key"`
	IsActive     bool       `db:"is_active"`
	IsVerified   bool       `db:"is_verified"`
	LastActive   *time.Time `db:"last_active"`
}

type PointsPackage struct {
	ID          int       `db:"id"`
	Name        string    `db:"name"`
	Amount      float64   `db:"amount"`
	Points      int       `db:"points"`
	BonusPoints int       `db:"bonus_points"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
}

type PointTransaction struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Delta     int       `db:"delta"`
	Reason    string    `db:"reason"`
	Reference string    `db:"reference"`
	CreatedAt time.Time `db:"created_at"`
}

type WebhookEvent struct {
	ID        int       `db:"id"`
	Provider  string    `db:"provider"`
	EventID   string    `db:"event_id"`
	CreatedAt time.Time `db:"created_at"`
}
