package models

type Question struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	QuestionTitle   string `gorm:"type:text;not null" json:"questionTitle" binding:"required"`
	Category        string `gorm:"size:100;not null;index" json:"category" binding:"required"`
	Option1         string `gorm:"size:500" json:"option1"`
	Option2         string `gorm:"size:500" json:"option2"`
	Option3         string `gorm:"size:500" json:"option3"`
	Option4         string `gorm:"size:500" json:"option4"`
	RightAnswer     string `gorm:"size:500;not null" json:"rightAnswer" binding:"required"`
	DifficultyLevel string `gorm:"size:50" json:"difficultyLevel"`
}

// QuestionDto is what quiz takers see: no answer, no difficulty.
type QuestionDto struct {
	ID            uint   `json:"id"`
	QuestionTitle string `json:"questionTitle"`
	Option1       string `json:"option1"`
	Option2       string `json:"option2"`
	Option3       string `json:"option3"`
	Option4       string `json:"option4"`
}

func (q Question) Dto() QuestionDto {
	return QuestionDto{
		ID:            q.ID,
		QuestionTitle: q.QuestionTitle,
		Option1:       q.Option1,
		Option2:       q.Option2,
		Option3:       q.Option3,
		Option4:       q.Option4,
	}
}
