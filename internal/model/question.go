package model

// Question is a fixed multiple-choice item. Answer is the 1-based index of the correct option.
type Question struct {
	ID      uint   `gorm:"primarykey" json:"id"`
	Text    string `json:"text" gorm:"column:question;type:text;not null"`
	Option1 string `json:"option1" gorm:"not null"`
	Option2 string `json:"option2" gorm:"not null"`
	Option3 string `json:"option3" gorm:"not null"`
	Option4 string `json:"option4" gorm:"not null"`
	Answer  int    `json:"answer" gorm:"not null"`
}

// Options returns the four option texts in display order.
func (q Question) Options() []string {
	return []string{q.Option1, q.Option2, q.Option3, q.Option4}
}
