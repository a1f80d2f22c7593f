package domain

// Activity is a drag-source descriptor from the activity catalog.
type Activity struct {
	ID    string
	Name  string
	Color string
}

// DefaultActivities returns the built-in activity catalog used when the
// user has not customized one.
func DefaultActivities() []Activity {
	return []Activity{
		{ID: "1", Name: "운동", Color: "#93C5FD"},
		{ID: "2", Name: "독서", Color: "#60A5FA"},
		{ID: "3", Name: "공부", Color: "#3B82F6"},
		{ID: "4", Name: "요리", Color: "#93C5FD"},
		{ID: "5", Name: "청소", Color: "#60A5FA"},
		{ID: "6", Name: "산책", Color: "#3B82F6"},
		{ID: "7", Name: "명상", Color: "#93C5FD"},
		{ID: "8", Name: "영화감상", Color: "#60A5FA"},
		{ID: "9", Name: "음악감상", Color: "#3B82F6"},
		{ID: "10", Name: "게임", Color: "#93C5FD"},
		{ID: "11", Name: "쇼핑", Color: "#60A5FA"},
		{ID: "12", Name: "카페", Color: "#3B82F6"},
		{ID: "13", Name: "친구만남", Color: "#93C5FD"},
		{ID: "14", Name: "드라마", Color: "#60A5FA"},
		{ID: "15", Name: "유튜브", Color: "#3B82F6"},
	}
}

// FindActivity looks up an activity by id or name.
func FindActivity(activities []Activity, key string) (Activity, bool) {
	for _, a := range activities {
		if a.ID == key || a.Name == key {
			return a, true
		}
	}
	return Activity{}, false
}
