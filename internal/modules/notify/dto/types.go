package dto

type NotificationInput struct {
	Title string
	Body  string
}
