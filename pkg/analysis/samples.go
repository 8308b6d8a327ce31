package analysis

// CustomText is the fixed sentence run through the ad-hoc extraction check
// after the main batch. It produces no records and feeds no statistics.
const CustomText = "Rohit Sharma, a cricketing genius known for his effortless elegance, " +
	"destructive batting, and record-breaking centuries. His leadership, poise, " +
	"and consistency have solidified him as one of the game's finest, inspiring " +
	"millions with each powerful stroke and calculated innings."

// SampleTexts returns the fixed sample corpus, in analysis order.
func SampleTexts() []string {
	return []string{
		"Barack Obama was the 44th President of the United States and was born in Hawaii.",
		"Apple Inc. is a technology company based in Cupertino, California, founded by Steve Jobs.",
		"Sachin Tendulkar is a legendary cricket player from Mumbai, India.",
		"Microsoft Corporation was founded by Bill Gates and Paul Allen in 1975.",
		"The Eiffel Tower is a famous landmark located in Paris, France.",
		"Google was started by Larry Page and Sergey Brin at Stanford University.",
		"Lionel Messi plays football for Paris Saint-Germain and the Argentina national team.",
		"Amazon.com was founded by Jeff Bezos in Seattle, Washington.",
	}
}
