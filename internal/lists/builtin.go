// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lists

import "github.com/pdiddy/idea-generator/pkg/types"

// Beginner words are concrete everyday nouns that combine easily.
var beginnerWords = []string{
	"Apple", "Bicycle", "Coffee", "Dog", "Umbrella",
	"Bakery", "Camera", "Garden", "Pillow", "Backpack",
	"Sneaker", "Lunchbox", "Library", "Bus", "Candle",
	"Bookshelf", "Mirror", "Bathtub", "Guitar", "Kitchen",
	"Homework", "Picnic", "Rain", "Breakfast", "Hat",
	"Laundry", "Pizza", "Park", "Cat", "Alarm clock",
}

// Intermediate words mix objects with services and habits.
var intermediateWords = []string{
	"Subscription", "Drone", "Coworking", "Meal kit", "Podcast",
	"Smartwatch", "Carpool", "Farmers market", "Vending machine", "Rental",
	"Marketplace", "Loyalty card", "Recycling", "Fitness tracker", "Commute",
	"Karaoke", "Second-hand", "Festival", "Night shift", "Pop-up store",
	"Language exchange", "Tiny house", "Pet sitting", "Escape room", "Food truck",
	"Crowdfunding", "Sleep", "Retirement", "Wedding", "Moving day",
}

// Advanced words are abstract or technical and need a creative leap.
var advancedWords = []string{
	"Blockchain", "Quantum", "Nostalgia", "Aging society", "Carbon credit",
	"Loneliness", "Microbiome", "Satellite", "Gig economy", "Digital twin",
	"Biodegradable", "Serendipity", "Supply chain", "Metaverse", "Vertical farm",
	"Circular economy", "Accessibility", "Telemedicine", "Privacy", "Desalination",
	"Procrastination", "Micro-mobility", "Genome", "Dark kitchen", "Lab-grown",
	"Attention span", "Zero waste", "Exoskeleton", "Rural depopulation", "Edge computing",
}

var pitchBattleThemes = []string{
	"Pet Rocks",
	"A subscription for houseplants",
	"An app that makes waiting in line fun",
	"Umbrellas that are never forgotten",
	"A service for people who cannot wake up",
	"Leftover food from convenience stores",
	"A new kind of alarm clock",
	"Making commuting trains enjoyable",
	"Socks that never lose their pair",
	"Tourism for a town nobody visits",
	"A business for retired engineers",
	"Turning boring meetings into value",
	"A product for solo campers",
	"Making tax returns entertaining",
	"A gym for people who hate exercise",
	"Rental service for things you use once a year",
	"A cafe that sells silence",
	"Helping grandparents use smartphones",
	"Re-selling unused gift cards",
	"A dating service for dog owners",
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	return New(map[types.Difficulty][]string{
		types.DifficultyBeginner:     beginnerWords,
		types.DifficultyIntermediate: intermediateWords,
		types.DifficultyAdvanced:     advancedWords,
	}, pitchBattleThemes)
}
