package catalog

import "github.com/parables-of-the-word-api/internal/models"

var (
	synoptic       = []string{"Matthew", "Mark", "Luke"}
	matthewOnly    = []string{"Matthew"}
	markOnly       = []string{"Mark"}
	lukeOnly       = []string{"Luke"}
	matthewAndLuke = []string{"Matthew", "Luke"}
)

// parables is ordered by the sequence in which the teachings appear in the
// ministry of Jesus
var parables = []models.Parable{
	{ID: "sower", Title: "The Sower", Reference: "Matthew 13:1-23", Order: 1, Gospels: synoptic,
		ShortDescription: "Seed falls on four kinds of soil, showing how the word of the kingdom is received."},
	{ID: "growing-seed", Title: "The Growing Seed", Reference: "Mark 4:26-29", Order: 2, Gospels: markOnly,
		ShortDescription: "Seed sprouts and grows while the farmer sleeps, as the kingdom grows by God's power."},
	{ID: "weeds", Title: "The Wheat and the Weeds", Reference: "Matthew 13:24-30", Order: 3, Gospels: matthewOnly,
		ShortDescription: "An enemy sows weeds among the wheat, and both grow together until the harvest."},
	{ID: "mustard-seed", Title: "The Mustard Seed", Reference: "Matthew 13:31-32", Order: 4, Gospels: synoptic,
		ShortDescription: "The smallest of seeds becomes a tree where the birds come and nest."},
	{ID: "leaven", Title: "The Leaven", Reference: "Matthew 13:33", Order: 5, Gospels: matthewAndLuke,
		ShortDescription: "A little yeast works through a large measure of flour until all of it is leavened."},
	{ID: "hidden-treasure", Title: "The Hidden Treasure", Reference: "Matthew 13:44", Order: 6, Gospels: matthewOnly,
		ShortDescription: "A man finds treasure in a field and joyfully sells all he has to buy it."},
	{ID: "pearl", Title: "The Pearl of Great Price", Reference: "Matthew 13:45-46", Order: 7, Gospels: matthewOnly,
		ShortDescription: "A merchant sells everything to buy one pearl of surpassing value."},
	{ID: "net", Title: "The Dragnet", Reference: "Matthew 13:47-50", Order: 8, Gospels: matthewOnly,
		ShortDescription: "A net gathers fish of every kind, which are sorted at the end of the age."},
	{ID: "lamp", Title: "The Lamp Under a Basket", Reference: "Mark 4:21-25", Order: 9, Gospels: synoptic,
		ShortDescription: "A lamp is set on a stand, not hidden, so that what is concealed is brought to light."},
	{ID: "two-debtors", Title: "The Two Debtors", Reference: "Luke 7:41-43", Order: 10, Gospels: lukeOnly,
		ShortDescription: "Two debts are forgiven, and the one forgiven more loves more."},
	{ID: "good-samaritan", Title: "The Good Samaritan", Reference: "Luke 10:25-37", Order: 11, Gospels: lukeOnly,
		ShortDescription: "A despised outsider shows mercy to a wounded traveler, answering who my neighbor is."},
	{ID: "friend-at-midnight", Title: "The Friend at Midnight", Reference: "Luke 11:5-8", Order: 12, Gospels: lukeOnly,
		ShortDescription: "A persistent neighbor receives bread at midnight, encouraging bold prayer."},
	{ID: "rich-fool", Title: "The Rich Fool", Reference: "Luke 12:16-21", Order: 13, Gospels: lukeOnly,
		ShortDescription: "A man builds bigger barns for his harvest but is not rich toward God."},
	{ID: "barren-fig-tree", Title: "The Barren Fig Tree", Reference: "Luke 13:6-9", Order: 14, Gospels: lukeOnly,
		ShortDescription: "A fruitless tree is given one more year of care before it is cut down."},
	{ID: "great-banquet", Title: "The Great Banquet", Reference: "Luke 14:15-24", Order: 15, Gospels: lukeOnly,
		ShortDescription: "Invited guests make excuses, so the poor and outcast are brought in to the feast."},
	{ID: "lost-sheep", Title: "The Lost Sheep", Reference: "Luke 15:3-7", Order: 16, Gospels: matthewAndLuke,
		ShortDescription: "A shepherd leaves the ninety-nine to search for the one that is lost."},
	{ID: "lost-coin", Title: "The Lost Coin", Reference: "Luke 15:8-10", Order: 17, Gospels: lukeOnly,
		ShortDescription: "A woman sweeps the house until she finds her lost coin and rejoices with her friends."},
	{ID: "prodigal", Title: "The Prodigal Son", Reference: "Luke 15:11-32", Order: 18, Gospels: lukeOnly,
		ShortDescription: "A wayward son returns home to a father who runs to welcome him."},
	{ID: "shrewd-manager", Title: "The Shrewd Manager", Reference: "Luke 16:1-13", Order: 19, Gospels: lukeOnly,
		ShortDescription: "A dismissed steward acts shrewdly, teaching faithfulness with worldly wealth."},
	{ID: "rich-man-lazarus", Title: "The Rich Man and Lazarus", Reference: "Luke 16:19-31", Order: 20, Gospels: lukeOnly,
		ShortDescription: "A rich man and a beggar die, and their fortunes are reversed in the life to come."},
	{ID: "unforgiving-servant", Title: "The Unforgiving Servant", Reference: "Matthew 18:23-35", Order: 21, Gospels: matthewOnly,
		ShortDescription: "A servant forgiven a vast debt refuses to forgive a small one owed to him."},
	{ID: "persistent-widow", Title: "The Persistent Widow", Reference: "Luke 18:1-8", Order: 22, Gospels: lukeOnly,
		ShortDescription: "A widow's persistence wins justice from an unjust judge, teaching us always to pray."},
	{ID: "pharisee-tax-collector", Title: "The Pharisee and the Tax Collector", Reference: "Luke 18:9-14", Order: 23, Gospels: lukeOnly,
		ShortDescription: "A humble sinner, not a self-righteous religious man, goes home justified."},
	{ID: "workers-vineyard", Title: "The Workers in the Vineyard", Reference: "Matthew 20:1-16", Order: 24, Gospels: matthewOnly,
		ShortDescription: "Laborers hired at the last hour receive the same wage as those who worked all day."},
	{ID: "ten-minas", Title: "The Ten Minas", Reference: "Luke 19:11-27", Order: 25, Gospels: lukeOnly,
		ShortDescription: "Servants are entrusted with money while their master travels to receive a kingdom."},
	{ID: "two-sons", Title: "The Two Sons", Reference: "Matthew 21:28-32", Order: 26, Gospels: matthewOnly,
		ShortDescription: "One son refuses but then obeys, the other agrees but never goes."},
	{ID: "wicked-tenants", Title: "The Wicked Tenants", Reference: "Matthew 21:33-46", Order: 27, Gospels: synoptic,
		ShortDescription: "Tenants of a vineyard reject the owner's servants and finally kill his son."},
	{ID: "wedding-feast", Title: "The Wedding Feast", Reference: "Matthew 22:1-14", Order: 28, Gospels: matthewOnly,
		ShortDescription: "A king's invitation to his son's wedding is refused, and the feast is opened to all."},
	{ID: "fig-tree", Title: "The Budding Fig Tree", Reference: "Matthew 24:32-35", Order: 29, Gospels: synoptic,
		ShortDescription: "Tender branches and new leaves show that summer, and the end, is near."},
	{ID: "ten-virgins", Title: "The Ten Virgins", Reference: "Matthew 25:1-13", Order: 30, Gospels: matthewOnly,
		ShortDescription: "Five wise and five foolish bridesmaids await the bridegroom, but only some are ready."},
	{ID: "talents", Title: "The Talents", Reference: "Matthew 25:14-30", Order: 31, Gospels: matthewOnly,
		ShortDescription: "Servants entrusted with their master's wealth are judged by what they did with it."},
	{ID: "sheep-goats", Title: "The Sheep and the Goats", Reference: "Matthew 25:31-46", Order: 32, Gospels: matthewOnly,
		ShortDescription: "The nations are separated by how they treated the least of these."},
}
