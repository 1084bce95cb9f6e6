package view

import "math/rand"

var taglines = []string{
	"Let's make tracking your OJT hours effortless!",
	"Every logged hour brings you closer to your goals!",
	"Success starts with good tracking habits!",
	"One hour at a time - you've got this!",
	"Watch your progress grow day by day!",
	"Small logs today, big achievements tomorrow!",
	"Consistency turns hours into achievements!",
	"Progress is built one hour at a time",
	"Log now, shine later",
	"Don't count hours, make hours count",
	"The expert in anything was once a trainee",
	"What gets measured gets mastered",
}

// Tagline picks one of the rotating status-screen lines.
func Tagline() string {
	return taglines[rand.Intn(len(taglines))]
}
