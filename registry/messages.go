package registry

import "fmt"

// User-facing status catalog. The wording is a compatibility contract
// with the original ticket-office UI and must not be reworded.

// Shared search statuses.
const (
	MsgSearchCancelled = "Пошук скасовано. Введіть запит для пошуку"
)

func msgFound(n int) string { return fmt.Sprintf("Знайдено %d квитків ✅", n) }

// Passenger statuses.
const (
	MsgPassengerAdded   = "Пасажира додано ✅"
	MsgPassengerEdited  = "Пасажира змінено ✅"
	MsgPassengerRemoved = "Пасажира видалено ✅"

	msgPassengerIDEmpty   = "Введіть ID пасажира"
	msgPassengerIDNaN     = "ID повинен містити тільки цифри"
	msgPassengerNameEmpty = "Введіть імʼя пасажира"
	msgPassportEmpty      = "Введіть паспорт пасажира"
	msgPassportNaN        = "Паспорт повинен містити тільки цифри"
)

func msgPassengerIDMissing(id string) string {
	return fmt.Sprintf("Пасажира з ID %s не існує", id)
}

func msgPassportExists(passport string) string {
	return fmt.Sprintf("Паспорт %s вже існує в базі даних", passport)
}

// Ticket statuses.
const (
	MsgTicketAdded   = "Квиток додано ✅"
	MsgTicketEdited  = "Квиток відредаговано ✅"
	MsgTicketRemoved = "Квиток видалено ✅"

	msgTicketIDEmpty     = "Введіть ID квитка"
	msgTicketIDNaN       = "ID повинен містити тільки цифри"
	msgTicketNumberEmpty = "Введите номер квитка"
	msgTicketNumberNaN   = "Номер квитка має містити тільки цифри"
	msgTicketPriceEmpty  = "Введіть ціну квитка"
	msgTicketPriceNaN    = "Ціна квитка повинна містити тільки цифри"
)

func msgTicketIDMissing(id string) string {
	return fmt.Sprintf("Квитка з ID %s не існує", id)
}

func msgTicketNumberExists(number string) string {
	return fmt.Sprintf("Квиток %s вже існує в базі даних", number)
}

// Train statuses.
const (
	MsgTrainAdded   = "Потяг додано ✅"
	MsgTrainEdited  = "Потяг змінено ✅"
	MsgTrainRemoved = "Потяг видалено ✅"

	msgTrainIDEmpty     = "Введіть ID потягу"
	msgTrainIDNaN       = "ID потягу повинен містити тільки цифри"
	msgTrainNameEmpty   = "Введіть назву потягу"
	msgTrainRouteEmpty  = "Введіть маршрут потягу"
	msgTrainNumberEmpty = "Введіть номер потягу"
	msgTrainNumberNaN   = "Номер потягу повинен містити тільки цифри"
)

func msgTrainIDMissing(id string) string {
	return fmt.Sprintf("Потягу з ID %s не існує", id)
}

func msgTrainNumberExists(number string) string {
	return fmt.Sprintf("Номер %s вже існує в базі даних", number)
}

// Sold-ticket statuses.
const (
	MsgSoldAdded   = "Квиток додано ✅"
	MsgSoldEdited  = "Квиток відредаговано ✅"
	MsgSoldRemoved = "Квиток видалено ✅"

	msgSoldIDEmpty        = "Введіть ID"
	msgSoldIDNaN          = "ID повинен бути числом"
	msgSoldPassengerEmpty = "Введіть пасажира"
	msgSoldTrainEmpty     = "Введіть потяг"
	msgSoldTicketEmpty    = "Введіть квиток"
	msgSoldDateEmpty      = "Введіть дату"
	msgSoldDateFormat     = "Неправильний формат дати"
)

func msgSoldIDMissing(id string) string {
	return fmt.Sprintf("ID %s не існує", id)
}

func msgPassengerMissing(id string) string {
	return fmt.Sprintf("Пасажира %s не існує", id)
}

func msgTrainMissing(id string) string {
	return fmt.Sprintf("Потяга %s не існує", id)
}

func msgTicketMissing(id string) string {
	return fmt.Sprintf("Квитка %s не існує", id)
}
