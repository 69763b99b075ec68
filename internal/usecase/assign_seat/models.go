package assign_seat

// Request модель запроса на закрепление места
type Request struct {
	UserID     int64  // ID пользователя
	ContractID *int64 // Целевой контракт; nil - снять назначение
}

// Response модель ответа с текущей занятостью контракта
type Response struct {
	UserID     int64  // ID пользователя
	ContractID *int64 // Контракт после операции (nil - место снято)

	// Занятость целевого контракта после операции (нули при снятии)
	AssignedSeats int
	TotalSeats    int
}
