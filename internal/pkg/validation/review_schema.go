package validation

// ReviewSchema returns the rules for a review submission
func ReviewSchema() *Schema {
	return NewSchema(
		StringField("courseId").WithTag("required"),
		StringField("semesterId").WithTag("required"),
		NumberField("rating").WithRange(1, 5),
		NumberField("difficulty").WithRange(1, 5),
		NumberField("workload").WithRange(1, 100),
		StringField("body").WithTag("required"),
		StringField("username").WithTag("required"),
		StringField("code").WithTag("required"),
	)
}
