package habit

import "habits-api/internal/apperr"

type CreateHabitDTO struct {
	Title    string `json:"title"`
	WeekDays []int  `json:"weekDays"`
}

func (d CreateHabitDTO) Validate() error {
	if d.Title == "" {
		return apperr.Validationf("title is required")
	}
	for _, wd := range d.WeekDays {
		if wd < 0 || wd > 6 {
			return apperr.Validationf("week day %d outside [0,6]", wd)
		}
	}
	return nil
}
