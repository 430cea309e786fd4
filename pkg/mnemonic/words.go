package mnemonic

// wordlist holds exactly 256 distinct lowercase words so a single random
// byte indexes one word. Drawn from short, unambiguous English nouns and
// adjectives; no word is a prefix of another's common misreading.
var wordlist = [256]string{
	"acorn", "amber", "anchor", "apple", "arrow", "aspen", "atlas", "autumn",
	"badge", "bamboo", "barrel", "basalt", "beacon", "berry", "birch", "bishop",
	"blaze", "bloom", "bolt", "border", "bottle", "boulder", "branch", "brass",
	"breeze", "brick", "bridge", "bronze", "brook", "bucket", "butter", "cabin",
	"cactus", "candle", "canoe", "canyon", "carbon", "cargo", "carpet", "castle",
	"cedar", "cellar", "chalk", "chapel", "cherry", "chisel", "cider", "cinder",
	"circle", "citrus", "clay", "cliff", "clover", "cobalt", "coffee", "comet",
	"copper", "coral", "cotton", "crater", "cricket", "crystal", "curtain", "cypress",
	"dagger", "daisy", "delta", "denim", "desert", "diesel", "dome", "drift",
	"dune", "dusk", "eagle", "echo", "ember", "envoy", "falcon", "fathom",
	"feather", "fennel", "ferry", "fiber", "fiddle", "flint", "forest", "fossil",
	"fountain", "fox", "frost", "galaxy", "garnet", "geyser", "ginger", "glacier",
	"goblet", "granite", "grape", "gravel", "grove", "hammer", "harbor", "harvest",
	"hazel", "heron", "hickory", "hollow", "honey", "horizon", "hudson", "icicle",
	"indigo", "ink", "iris", "iron", "island", "ivory", "jade", "jasper",
	"jubilee", "juniper", "kettle", "kiln", "lagoon", "lantern", "larch", "laurel",
	"lava", "lemon", "lilac", "linen", "lotus", "lumber", "lunar", "magnet",
	"mantle", "maple", "marble", "meadow", "mesa", "meteor", "mill", "mineral",
	"mint", "mirror", "monsoon", "morning", "mosaic", "moss", "mountain", "mustard",
	"myrtle", "nectar", "nickel", "nimbus", "north", "nutmeg", "oak", "oasis",
	"obsidian", "ocean", "olive", "onyx", "opal", "orbit", "orchard", "osprey",
	"otter", "oyster", "paddle", "pagoda", "palm", "panther", "paper", "pebble",
	"pepper", "petal", "pewter", "pillar", "pine", "pistol", "planet", "plum",
	"pocket", "polar", "pond", "poplar", "prairie", "prism", "pulse", "pumice",
	"quartz", "quill", "quiver", "raft", "rain", "raven", "reef", "ribbon",
	"ridge", "river", "robin", "rocket", "rosemary", "rudder", "rustic", "saddle",
	"saffron", "sage", "salmon", "sandal", "sapphire", "scarlet", "schooner", "sepia",
	"shadow", "shale", "shelter", "silver", "slate", "sleet", "smoke", "solar",
	"sparrow", "spice", "spruce", "steel", "stone", "storm", "summit", "sundial",
	"tallow", "tamarind", "tannery", "teak", "tempest", "thicket", "thistle", "thunder",
	"timber", "topaz", "torch", "trellis", "trout", "tulip", "tundra", "turret",
	"umber", "valley", "velvet", "vessel", "violet", "walnut", "willow", "zephyr",
}
