// Package chatbot answers travel questions from a fixed set of canned replies.
// It makes no network calls.
package chatbot

import "strings"

// Greeting opens every conversation.
const Greeting = "Hello! I am your AI Travel Assistant. How can I help you plan your perfect trip today?"

const (
	goaPlan = "Here's a perfect plan for Goa:\n\n🏖️ Day 1-2: North Goa\n• Baga Beach & water sports\n• Fort Aguada sunset\n• Night markets\n\n🌴 Day 3: South Goa\n• Palolem Beach\n• Cabo de Rama Fort\n\n💰 Budget: ₹15,000-25,000 per person\n\n🏨 Hotels: Recommend staying in Calangute or Candolim\n\n🍽️ Must-try: Thalassa for Greek food, Brittos for seafood"

	keralaPlan = "Kerala Backwaters Experience:\n\n🚤 Itinerary:\n• Day 1: Arrive Kochi, explore Fort Kochi\n• Day 2-3: Alleppey houseboat stay\n• Day 4: Munnar tea gardens\n• Day 5: Periyar wildlife sanctuary\n\n💰 Budget: ₹30,000-45,000 per person\n\n🏠 Accommodation: Houseboat + Hill resort\n\n🍛 Food: Traditional Kerala Sadhya is a must!"

	budgetTips = "Budget Travel Tips:\n\n💡 Best Budget Destinations:\n1. Rishikesh - ₹8,000 for 3 days\n2. Hampi - ₹10,000 for 4 days\n3. Varanasi - ₹12,000 for 3 days\n\n💰 Money-saving tips:\n• Travel during off-season\n• Use local transport\n• Stay in hostels\n• Eat at local restaurants\n\nWould you like details on any specific destination?"

	restaurantList = "Top Restaurants by City:\n\n🍽️ Delhi:\n• Karim's - Mughlai\n• Indian Accent - Fine Dining\n• Paranthe Wali Gali - Street Food\n\n🍛 Mumbai:\n• Britannia - Parsi\n• Trishna - Seafood\n• Cafe Mondegar - Continental\n\n🥘 Bangalore:\n• MTR - South Indian\n• Karavalli - Coastal\n• Truffles - Burgers\n\nWhich city are you interested in?"

	capabilityPrompt = "I'd be happy to help you plan your trip! I can assist with:\n\n✈️ Trip Planning\n🏨 Hotel Recommendations\n🍽️ Restaurant Suggestions\n💰 Budget Estimation\n🗺️ Itinerary Creation\n\nCould you tell me more about:\n• Where you'd like to go?\n• Your budget range?\n• Duration of trip?\n• Interests (adventure, culture, relaxation)?"
)

// Topic names the reply a message was matched to.
type Topic string

const (
	TopicGoa         Topic = "goa"
	TopicKerala      Topic = "kerala"
	TopicBudget      Topic = "budget"
	TopicRestaurants Topic = "restaurants"
	TopicFallback    Topic = "fallback"
)

// Rule pairs a predicate over the lower-cased message with its reply.
type Rule struct {
	Topic    Topic
	Matches  func(lower string) bool
	Response string
}

func containsAny(keywords ...string) func(string) bool {
	return func(lower string) bool {
		for _, k := range keywords {
			if strings.Contains(lower, k) {
				return true
			}
		}
		return false
	}
}

// Rules are evaluated in order; the first match wins.
var Rules = []Rule{
	{Topic: TopicGoa, Matches: containsAny("goa"), Response: goaPlan},
	{Topic: TopicKerala, Matches: containsAny("kerala"), Response: keralaPlan},
	{Topic: TopicBudget, Matches: containsAny("budget", "cheap"), Response: budgetTips},
	{Topic: TopicRestaurants, Matches: containsAny("restaurant", "food"), Response: restaurantList},
}

// Classify returns the topic the message falls under.
func Classify(message string) Topic {
	topic, _ := match(message)
	return topic
}

// Respond returns the canned reply for message. It never fails.
func Respond(message string) string {
	_, reply := match(message)
	return reply
}

// ResponseFor returns the reply text of a topic.
func ResponseFor(topic Topic) string {
	for _, r := range Rules {
		if r.Topic == topic {
			return r.Response
		}
	}
	return capabilityPrompt
}

func match(message string) (Topic, string) {
	lower := strings.ToLower(message)
	for _, r := range Rules {
		if r.Matches(lower) {
			return r.Topic, r.Response
		}
	}
	return TopicFallback, capabilityPrompt
}
