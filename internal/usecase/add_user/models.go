package add_user

// Request модель запроса на добавление пользователя в компанию
type Request struct {
	CompanyID int64  // ID компании
	Email     string // Email нового пользователя
	FullName  string // Полное имя
}

// Response модель ответа с созданным пользователем и остатком квоты
type Response struct {
	UserID    int64 // ID созданного пользователя
	CompanyID int64

	// Квота компании после добавления
	ActiveUsers int
	TotalSeats  int
}
