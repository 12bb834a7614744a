// Package skyrimse defines the builtin profile for The Elder Scrolls V:
// Skyrim Special Edition.
package skyrimse

import "bmm/internal/profile"

// Profile builds the Skyrim Special Edition game profile.
func Profile() *profile.Profile {
	return &profile.Profile{
		ID:         "skyrimse",
		Name:       "Skyrim Special Edition",
		Exe:        "SkyrimSE.exe",
		DetectFile: "SkyrimSE.exe",
		MasterFiles: []string{
			"Skyrim.esm",
			"Update.esm",
			"Dawnguard.esm",
			"HearthFires.esm",
			"Dragonborn.esm",
		},
		IniFiles:    []string{"Skyrim.ini", "SkyrimPrefs.ini", "SkyrimCustom.ini"},
		DataDir:     "Data",
		NexusDomain: "skyrimspecialedition",

		DataFiles: profile.NewFileSet(
			"Skyrim.esm",
			"Update.esm",
			"Dawnguard.esm",
			"HearthFires.esm",
			"Dragonborn.esm",
			"Skyrim - Animations.bsa",
			"Skyrim - Interface.bsa",
			"Skyrim - Meshes0.bsa",
			"Skyrim - Meshes1.bsa",
			"Skyrim - Misc.bsa",
			"Skyrim - Shaders.bsa",
			"Skyrim - Sounds.bsa",
			"Skyrim - Textures0.bsa",
			"Skyrim - Textures1.bsa",
			"Skyrim - Textures2.bsa",
			"Skyrim - Textures3.bsa",
			"Skyrim - Textures4.bsa",
			"Skyrim - Textures5.bsa",
			"Skyrim - Textures6.bsa",
			"Skyrim - Textures7.bsa",
			"Skyrim - Textures8.bsa",
			"Skyrim - Voices_en0.bsa",
		),
		VanillaFiles: profile.NewFileSet(
			"Skyrim.esm",
			"Update.esm",
			"Dawnguard.esm",
			"HearthFires.esm",
			"Dragonborn.esm",
			"Skyrim - Animations.bsa",
			"Skyrim - Interface.bsa",
			"Skyrim - Meshes0.bsa",
			"Skyrim - Meshes1.bsa",
			"Skyrim - Misc.bsa",
			"Skyrim - Shaders.bsa",
			"Skyrim - Sounds.bsa",
			"Skyrim - Textures0.bsa",
			"Skyrim - Voices_en0.bsa",
			"Interface\\Translate_ENGLISH.txt",
		),

		ZeroFormEditorIDs: []string{
			"fCombatDistance",
			"fJumpHeightMin",
			"fSprintStaminaDrainMult",
			"iArrowMaxCount",
			"sDragonSoulAcquired",
		},

		ConditionFunctions: conditionFunctions,
		GlobalTweaks:       globalTweaks,
		SettingTweaks:      settingTweaks,
		Tables:             tables,
		RecordTypeNames:    recordTypeNames,
	}
}

var conditionFunctions = []profile.ConditionFunction{
	{ID: 0, Name: "GetWantBlocking", ParamArity: 0},
	{ID: 1, Name: "GetDistance", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 5, Name: "GetLocked", ParamArity: 0},
	{ID: 6, Name: "GetPos", ParamArity: 1, Param1: profile.ParamInt},
	{ID: 12, Name: "GetSecondsPassed", ParamArity: 0},
	{ID: 14, Name: "GetActorValue", ParamArity: 1, Param1: profile.ParamInt},
	{ID: 18, Name: "GetCurrentTime", ParamArity: 0},
	{ID: 27, Name: "GetLineOfSight", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 32, Name: "GetInSameCell", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 35, Name: "GetDisabled", ParamArity: 0},
	{ID: 36, Name: "MenuMode", ParamArity: 1, Param1: profile.ParamInt},
	{ID: 39, Name: "GetDisease", ParamArity: 0},
	{ID: 46, Name: "GetDead", ParamArity: 0},
	{ID: 47, Name: "GetItemCount", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 56, Name: "GetQuestRunning", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 58, Name: "GetStage", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 59, Name: "GetStageDone", ParamArity: 2, Param1: profile.ParamForm, Param2: profile.ParamInt},
	{ID: 60, Name: "GetFactionRankDifference", ParamArity: 2, Param1: profile.ParamForm, Param2: profile.ParamForm},
	{ID: 66, Name: "GetLockLevel", ParamArity: 0},
	{ID: 68, Name: "GetInCell", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 69, Name: "GetIsClass", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 70, Name: "GetIsRace", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 71, Name: "GetIsSex", ParamArity: 1, Param1: profile.ParamInt},
	{ID: 72, Name: "GetInFaction", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 73, Name: "GetIsID", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 74, Name: "GetFactionRank", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 75, Name: "GetGlobalValue", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 77, Name: "IsSneaking", ParamArity: 0},
	{ID: 98, Name: "GetPlayerControlsDisabled", ParamArity: 2, Param1: profile.ParamInt, Param2: profile.ParamInt},
	{ID: 109, Name: "IsWeaponMagicOut", ParamArity: 0},
	{ID: 117, Name: "GetVampireFeed", ParamArity: 0},
	{ID: 136, Name: "IsInList", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 182, Name: "GetEquipped", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 277, Name: "GetBaseActorValue", ParamArity: 1, Param1: profile.ParamInt},
	{ID: 278, Name: "IsOwner", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 359, Name: "GetLightLevel", ParamArity: 0},
	{ID: 414, Name: "GetKeywordItemCount", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 560, Name: "HasKeyword", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 576, Name: "IsSprinting", ParamArity: 0},
	{ID: 596, Name: "GetReplacedItemType", ParamArity: 1, Param1: profile.ParamForm},
}

var globalTweaks = []profile.Tweak{
	{
		Key:       "timescale",
		Label:     "Timescale",
		Tooltip:   "Game minutes per real minute.",
		EditorIDs: []string{"TimeScale"},
		Options: []profile.TweakOption{
			{Label: "6", Value: 6},
			{Label: "10", Value: 10},
			{Label: "20 (default)", Value: 20, IsDefault: true},
			{Label: "24", Value: 24},
			{Label: "48", Value: 48},
			{Label: "Custom", CustomInput: true},
		},
	},
}

var settingTweaks = []profile.Tweak{
	{
		Key:       "arrow-litter-count",
		Label:     "Arrow: Litter Count",
		Tooltip:   "Maximum number of spent arrows left lying around.",
		EditorIDs: []string{"iArrowMaxRefCount"},
		Options: []profile.TweakOption{
			{Label: "15 (default)", Value: 15, IsDefault: true},
			{Label: "25", Value: 25},
			{Label: "50", Value: 50},
			{Label: "100", Value: 100},
			{Label: "Custom", CustomInput: true},
		},
	},
	{
		Key:       "arrow-recovery-chance",
		Label:     "Arrow: Recovery from Actor",
		Tooltip:   "Chance of recovering an arrow from a hit actor.",
		EditorIDs: []string{"iArrowInventoryChance"},
		Options: []profile.TweakOption{
			{Label: "33% (default)", Value: 33, IsDefault: true},
			{Label: "50%", Value: 50},
			{Label: "60%", Value: 60},
			{Label: "100%", Value: 100},
			{Label: "Custom", CustomInput: true},
		},
	},
	{
		Key:       "camera-chase-distance",
		Label:     "Camera: Chase Distance",
		Tooltip:   "Maximum third-person camera distance.",
		EditorIDs: []string{"fVanityModeMaxDist", "fMouseWheelZoomIncrement"},
		Options: []profile.TweakOption{
			{Label: "x1 (default)", Value: 600, IsDefault: true},
			{Label: "x2", Value: 1200},
			{Label: "x5", Value: 3000},
			{Label: "Custom", CustomInput: true},
		},
	},
	{
		Key:              "msg-carry-weight",
		Label:            "Msg: Carrying Too Much",
		Tooltip:          "Message shown when over-encumbered.",
		EditorIDs:        []string{"sOverEncumbered"},
		EnabledByDefault: true,
		Options: []profile.TweakOption{
			{Label: "Default", Value: 0, IsDefault: true},
			{Label: "Disabled", Value: 1},
		},
	},
}

var tables = map[string]profile.Table{
	"names": {
		"ALCH": nil, "AMMO": nil, "ARMO": nil, "BOOK": nil, "CONT": nil,
		"DOOR": nil, "FLOR": nil, "INGR": nil, "KEYM": nil, "LIGH": nil,
		"MISC": nil, "NPC_": nil, "RACE": nil, "SCRL": nil, "SLGM": nil,
		"SPEL": nil, "WEAP": nil,
	},
	"prices": {
		"ALCH": {"value"}, "AMMO": {"value"}, "ARMO": {"value"},
		"BOOK": {"value"}, "INGR": {"value"}, "KEYM": {"value"},
		"LIGH": {"value"}, "MISC": {"value"}, "SCRL": {"value"},
		"SLGM": {"value"}, "WEAP": {"value"},
	},
	"stats": {
		"AMMO": {"eid", "value", "damage"},
		"ARMO": {"eid", "weight", "value", "armorRating"},
		"BOOK": {"eid", "weight", "value"},
		"INGR": {"eid", "weight", "value"},
		"KEYM": {"eid", "weight", "value"},
		"MISC": {"eid", "weight", "value"},
		"WEAP": {"eid", "weight", "value", "damage", "speed", "reach", "criticalDamage"},
	},
	"sounds": {
		"ACTI": {"soundLooping", "soundActivation"},
		"CONT": {"soundOpen", "soundClose"},
		"DOOR": {"soundOpen", "soundClose", "soundLoop"},
		"LIGH": {"sound"},
		"MGEF": {"castingSoundLevel", "sounds"},
		"WTHR": {"sounds"},
	},
	"graphics": {
		"ALCH": {"iconPath", "model"},
		"AMMO": {"iconPath", "model"},
		"ARMO": {"maleWorld", "maleIconPath", "femaleWorld", "femaleIconPath", "addons"},
		"BOOK": {"iconPath", "model"},
		"INGR": {"iconPath", "model"},
		"KEYM": {"iconPath", "model"},
		"LIGH": {"iconPath", "model"},
		"MGEF": {"castingArt", "hitEffectArt", "effectShader", "enchantShader", "light"},
		"MISC": {"iconPath", "model"},
		"STAT": {"model"},
		"WEAP": {"iconPath", "model", "firstPersonModel"},
	},
	"cellRecAttrs": {
		"C.Climate":     {"climate", "flags.showSky"},
		"C.Light":       {"lighting", "lightingTemplate"},
		"C.Location":    {"location"},
		"C.Music":       {"music"},
		"C.Name":        {"full"},
		"C.Owner":       {"ownership", "flags.publicArea"},
		"C.RecordFlags": {"flags1"},
		"C.Water":       {"water", "waterHeight", "waterNoiseTexture"},
	},
	"keywords": {
		"ALCH": nil, "AMMO": nil, "ARMO": nil, "BOOK": nil, "FLOR": nil,
		"INGR": nil, "KEYM": nil, "MISC": nil, "NPC_": nil, "RACE": nil,
		"SCRL": nil, "SLGM": nil, "SPEL": nil, "WEAP": nil,
	},
}

var recordTypeNames = map[string]string{
	"ACTI": "Activator",
	"ALCH": "Potion",
	"AMMO": "Ammo",
	"ARMO": "Armor",
	"BOOK": "Book",
	"CELL": "Cell",
	"CONT": "Container",
	"DIAL": "Dialog",
	"DOOR": "Door",
	"ENCH": "Enchantment",
	"FACT": "Faction",
	"FLOR": "Flora",
	"GLOB": "Global",
	"GMST": "Game Setting",
	"INGR": "Ingredient",
	"KEYM": "Key",
	"KYWD": "Keyword",
	"LIGH": "Light",
	"LVLI": "Leveled Item",
	"LVLN": "Leveled NPC",
	"MGEF": "Magic Effect",
	"MISC": "Misc. Item",
	"NPC_": "NPC",
	"PERK": "Perk",
	"QUST": "Quest",
	"RACE": "Race",
	"SCRL": "Scroll",
	"SLGM": "Soul Gem",
	"SPEL": "Spell",
	"STAT": "Static",
	"WEAP": "Weapon",
	"WTHR": "Weather",
}
