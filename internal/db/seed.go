package db

import "github.com/crankerz/crankerz/internal/models"

// DefaultAchievements returns the static achievement catalog.
func DefaultAchievements() []models.Achievement {
	return []models.Achievement{
		{Name: "First Timer", Description: "Complete your first session", BadgeEmoji: "🥇", Category: models.CategoryMilestones, RequirementType: models.RequirementSessions, RequirementValue: 1, ExperienceReward: 10},
		{Name: "Getting Started", Description: "Complete 5 sessions", BadgeEmoji: "🌟", Category: models.CategoryMilestones, RequirementType: models.RequirementSessions, RequirementValue: 5, ExperienceReward: 25},
		{Name: "Streak Starter", Description: "Achieve a 3-day streak", BadgeEmoji: "🔥", Category: models.CategoryConsistency, RequirementType: models.RequirementStreak, RequirementValue: 3, ExperienceReward: 20},
		{Name: "Social Butterfly", Description: "Add your first friend", BadgeEmoji: "🦋", Category: models.CategorySocial, RequirementType: models.RequirementFriends, RequirementValue: 1, ExperienceReward: 15},
		{Name: "Store Explorer", Description: "Purchase your first item", BadgeEmoji: "🛒", Category: models.CategoryMilestones, RequirementType: models.RequirementSessions, RequirementValue: 10, ExperienceReward: 15},
		{Name: "Fashion Icon", Description: "Own 5 different items", BadgeEmoji: "👗", Category: models.CategorySocial, RequirementType: models.RequirementSessions, RequirementValue: 25, ExperienceReward: 30},
		{Name: "Level Master", Description: "Reach level 10", BadgeEmoji: "🎯", Category: models.CategoryMilestones, RequirementType: models.RequirementSessions, RequirementValue: 50, ExperienceReward: 50},
		{Name: "Consistency King", Description: "Maintain a 7-day streak", BadgeEmoji: "🏅", Category: models.CategoryConsistency, RequirementType: models.RequirementStreak, RequirementValue: 7, ExperienceReward: 40},
	}
}

// DefaultStoreItems returns the static cosmetic store catalog.
func DefaultStoreItems() []models.StoreItem {
	return []models.StoreItem{
		// Themes.
		{Name: "Fire Theme", Type: models.ItemTheme, Price: 100, Description: "Hot red and orange check-in button theme", ImageURL: "/themes/fire.jpg", LevelRequired: 1},
		{Name: "Ocean Theme", Type: models.ItemTheme, Price: 150, Description: "Cool blue ocean check-in vibes", ImageURL: "/themes/ocean.jpg", LevelRequired: 3},
		{Name: "Dark Mode Pro", Type: models.ItemTheme, Price: 200, Description: "Sleek dark professional check-in theme", ImageURL: "/themes/dark.jpg", LevelRequired: 5},
		{Name: "Neon Glow", Type: models.ItemTheme, Price: 250, Description: "Cyberpunk neon check-in aesthetics", ImageURL: "/themes/neon.jpg", LevelRequired: 8},
		{Name: "Forest Theme", Type: models.ItemTheme, Price: 175, Description: "Natural green forest check-in vibes", ImageURL: "/themes/forest.jpg", LevelRequired: 4},
		{Name: "Sunset Glow", Type: models.ItemTheme, Price: 300, Description: "Warm orange-pink sunset check-in theme", ImageURL: "/themes/sunset.jpg", LevelRequired: 10},
		{Name: "Ice Crystal", Type: models.ItemTheme, Price: 225, Description: "Cool ice blue crystalline check-in theme", ImageURL: "/themes/ice.jpg", LevelRequired: 6},
		{Name: "Cosmic Purple", Type: models.ItemTheme, Price: 400, Description: "Deep space purple nebula check-in theme", ImageURL: "/themes/cosmic.jpg", LevelRequired: 15},
		{Name: "Cherry Blossom", Type: models.ItemTheme, Price: 350, Description: "Soft pink sakura check-in theme", ImageURL: "/themes/cherry.jpg", LevelRequired: 12},
		{Name: "Midnight Black", Type: models.ItemTheme, Price: 500, Description: "Ultimate black premium check-in theme", ImageURL: "/themes/midnight.jpg", LevelRequired: 20},
		{Name: "Retro Wave", Type: models.ItemTheme, Price: 300, Description: "80s synthwave aesthetic", ImageURL: "/themes/retro.jpg", LevelRequired: 13},
		{Name: "Minimalist White", Type: models.ItemTheme, Price: 250, Description: "Clean minimal design", ImageURL: "/themes/minimal.jpg", LevelRequired: 11},
		{Name: "Gaming RGB", Type: models.ItemTheme, Price: 275, Description: "RGB gaming setup vibes", ImageURL: "/themes/gaming.jpg", LevelRequired: 12},
		{Name: "Coffee Shop", Type: models.ItemTheme, Price: 200, Description: "Warm coffee house atmosphere", ImageURL: "/themes/coffee.jpg", LevelRequired: 9},
		{Name: "Beach Sunset", Type: models.ItemTheme, Price: 225, Description: "Tropical beach sunset", ImageURL: "/themes/beach.jpg", LevelRequired: 10},

		// Badges.
		{Name: "🔥 Hot Streak", Type: models.ItemBadge, Price: 50, Description: "For the dedicated crankers", ImageURL: "/badges/hot.png", LevelRequired: 1},
		{Name: "👑 King", Type: models.ItemBadge, Price: 300, Description: "Royal status symbol", ImageURL: "/badges/king.png", LevelRequired: 15},
		{Name: "💎 Diamond", Type: models.ItemBadge, Price: 150, Description: "Precious and rare", ImageURL: "/badges/diamond.png", LevelRequired: 8},
		{Name: "🚀 Rocket", Type: models.ItemBadge, Price: 100, Description: "Sky high performer", ImageURL: "/badges/rocket.png", LevelRequired: 5},
		{Name: "⚡ Lightning", Type: models.ItemBadge, Price: 75, Description: "Quick and electric", ImageURL: "/badges/lightning.png", LevelRequired: 3},
		{Name: "🎯 Target", Type: models.ItemBadge, Price: 125, Description: "Always on target", ImageURL: "/badges/target.png", LevelRequired: 6},
		{Name: "🏆 Champion", Type: models.ItemBadge, Price: 400, Description: "Ultimate winner badge", ImageURL: "/badges/champion.png", LevelRequired: 18},
		{Name: "🌟 Superstar", Type: models.ItemBadge, Price: 200, Description: "Shining bright star", ImageURL: "/badges/star.png", LevelRequired: 10},
		{Name: "🎪 Circus Master", Type: models.ItemBadge, Price: 175, Description: "Master of entertainment", ImageURL: "/badges/circus.png", LevelRequired: 9},
		{Name: "🔮 Mystic", Type: models.ItemBadge, Price: 250, Description: "Mysterious and magical", ImageURL: "/badges/mystic.png", LevelRequired: 12},
		{Name: "🎮 Gamer", Type: models.ItemBadge, Price: 120, Description: "For the gaming enthusiasts", ImageURL: "/badges/gamer.png", LevelRequired: 6},
		{Name: "🌙 Night Owl", Type: models.ItemBadge, Price: 90, Description: "Late night session master", ImageURL: "/badges/nightowl.png", LevelRequired: 4},
		{Name: "🔋 Energizer", Type: models.ItemBadge, Price: 160, Description: "Always charged and ready", ImageURL: "/badges/energy.png", LevelRequired: 8},
		{Name: "🎨 Artist", Type: models.ItemBadge, Price: 140, Description: "Creative and colorful spirit", ImageURL: "/badges/artist.png", LevelRequired: 7},
		{Name: "🏴‍☠️ Rebel", Type: models.ItemBadge, Price: 200, Description: "Rules are meant to be broken", ImageURL: "/badges/rebel.png", LevelRequired: 10},

		// Avatar frames.
		{Name: "Golden Border", Type: models.ItemAvatarFrame, Price: 200, Description: "Luxurious golden profile border", ImageURL: "/avatars/golden.png", LevelRequired: 12},
		{Name: "Silver Frame", Type: models.ItemAvatarFrame, Price: 150, Description: "Elegant silver frame", ImageURL: "/avatars/silver.png", LevelRequired: 8},
		{Name: "Bronze Ring", Type: models.ItemAvatarFrame, Price: 100, Description: "Classic bronze border", ImageURL: "/avatars/bronze.png", LevelRequired: 5},
		{Name: "Neon Outline", Type: models.ItemAvatarFrame, Price: 250, Description: "Glowing neon border effect", ImageURL: "/avatars/neon.png", LevelRequired: 10},
		{Name: "Fire Ring", Type: models.ItemAvatarFrame, Price: 175, Description: "Burning flame border", ImageURL: "/avatars/fire.png", LevelRequired: 7},
		{Name: "Ice Crown", Type: models.ItemAvatarFrame, Price: 300, Description: "Frozen crystal crown frame", ImageURL: "/avatars/ice.png", LevelRequired: 14},
		{Name: "Rainbow Arc", Type: models.ItemAvatarFrame, Price: 225, Description: "Colorful rainbow border", ImageURL: "/avatars/rainbow.png", LevelRequired: 11},
		{Name: "Dragon Scale", Type: models.ItemAvatarFrame, Price: 400, Description: "Mythical dragon scale frame", ImageURL: "/avatars/dragon.png", LevelRequired: 16},
		{Name: "Space Halo", Type: models.ItemAvatarFrame, Price: 350, Description: "Cosmic space ring", ImageURL: "/avatars/space.png", LevelRequired: 15},
		{Name: "Diamond Crust", Type: models.ItemAvatarFrame, Price: 500, Description: "Ultra premium diamond frame", ImageURL: "/avatars/diamond.png", LevelRequired: 20},
	}
}
