// Package chat answers fitness questions by keyword lookup.
package chat

import "strings"

// Rule pairs a keyword with its canned reply.
type Rule struct {
	Keyword string
	Reply   string
}

// Fallback is returned when no keyword matches.
const Fallback = "I'm here to help with fitness, nutrition, and wellness questions! Try asking about workouts, yoga, diet, or weight management."

// Rules is the priority list; earlier entries win when several keywords match.
var Rules = []Rule{
	{"workout", "For a great workout, try combining 30 minutes of cardio with strength training. Check out our exercise section for specific routines!"},
	{"yoga", "Yoga is excellent for flexibility and mental health. Start with basic poses like Downward Dog and Mountain Pose. Visit our yoga section for more!"},
	{"diet", "A balanced diet includes proteins, carbs, and healthy fats. Check our diet section for meal plans based on your goals!"},
	{"weight loss", "For weight loss, maintain a caloric deficit by eating fewer calories than you burn. Combine cardio with strength training!"},
	{"weight gain", "For weight gain, eat in a caloric surplus with protein-rich foods. Focus on strength training to build muscle mass."},
	{"bmi", "BMI is calculated as weight(kg) / height(m)². A healthy BMI is typically between 18.5-24.9."},
	{"calories", "Daily calorie needs vary by age, gender, and activity level. Generally 2000-2500 for adults. Track your intake in our diet section!"},
	{"exercise", "Regular exercise should include cardio, strength training, and flexibility work. Aim for at least 150 minutes of moderate activity per week."},
}

// Respond returns the reply of the first rule whose keyword occurs in message.
func Respond(message string) string {
	return Match(Rules, message)
}

// Match is Respond over an arbitrary rule list.
func Match(rules []Rule, message string) string {
	msg := strings.ToLower(message)
	for _, r := range rules {
		if strings.Contains(msg, r.Keyword) {
			return r.Reply
		}
	}
	return Fallback
}
