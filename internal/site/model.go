package site

type Contacts struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Hours   string `json:"hours"`
	MapURL  string `json:"map_url"`
}

// CartConfig holds the site-wide delivery and pickup pricing knobs.
type CartConfig struct {
	DeliveryPrice  float64 `json:"delivery_price"`
	FreeFrom       float64 `json:"free_from"`
	PickupDiscount float64 `json:"pickup_discount"`
}

type TelegramConfig struct {
	Enabled  bool   `json:"enabled"`
	BotToken string `json:"bot_token"`
	ChatID   string `json:"chat_id"`
}

type Notifications struct {
	Telegram TelegramConfig `json:"telegram"`
}

type Settings struct {
	Name          string        `json:"name"`
	Tagline       string        `json:"tagline"`
	Contacts      Contacts      `json:"contacts"`
	Cart          CartConfig    `json:"cart"`
	Notifications Notifications `json:"notifications"`
}

// DefaultSettings is the baseline the stored document is merged over.
func DefaultSettings() Settings {
	return Settings{
		Name:    "The Pub House",
		Tagline: "the best bar in town",
		Contacts: Contacts{
			Address: "1 Main Street",
			Phone:   "+48 000 000 000",
			Email:   "info@example.com",
			Hours:   "Mon-Sun: 12:00-00:00",
		},
		Cart: CartConfig{
			DeliveryPrice:  200,
			FreeFrom:       1500,
			PickupDiscount: 0,
		},
	}
}

// Public strips notification credentials for the unauthenticated API.
func (s Settings) Public() Settings {
	s.Notifications = Notifications{}
	return s
}
