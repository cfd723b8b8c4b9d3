package game

// defaultTrack is the one track the server knows, served for every hole
// until a real track store exists. The T line is the tile data, S the
// supported player counts, R the stroke ratings.
var defaultTrack = []string{
	"V 1",
	"A Nokkis",
	"N Test",
	"T BA2Q47DCUAECYABA2VCZAGCaAGCbAGC2AB3A36DCBAFEBCWABA2W5GEB3A38D2EB3A46D2EBA2DBABDBACDE40DBWQABA2Q2D5E17DCWI3DE8DCXTDE9DCOA6E14DCWI2DBAMABANABAOABAPAE6DCWTDF2E7D2H2D5E14DBAIABAKAGI10DEG5DC2DBA2NBATDE3DCMA6E11DCE3D4E17DCDCBAMN2ED2H2D5E14D4E17DCD2BAON2E3DCKA6E16D2E17DCDABAPN2ED2H2D5E14DBAKA2DE3DBQAT4DE15DCIA6E20DBIATBA2Q4DCDABJATE11DBPAQH2D5E19DBU2ACDABAGQ3DBAHQBAIQBA2QBRATE12DCJA6E19DBTATBA2QBAFQDBASQD5E10D2H2D5E19D2EBAEQBASQBbASBYASF4E12DCLA6E19D4EB3AD5E10D2H2D5E19D4EBVASD5E12DCNA6E5DCG3DBUASE9D4EHD5E10D2H2D5E19D4EBaASBZAS5E12DCPA6E13DBWMAE4D3EBALQFDBAJQD3E10D2H2D5E13D2E4D4EBAKQ3DCDABU2AE7DB2AQ2DFGD6E13D2E5DBLATCDAI4DBKATB3A4DB2AQE8DECDA2E2CADE12D2E6DBU2ABSAT4DB3AB2AQ4DF3DCT2DCSACQPDCRAECVAFI29DBAR4DBA2Q12D,Ads:A2309B2208C4019",
	"S fttf14",
	"C 3,4",
	"I 13942,90651,1,37",
	"R 94,12,23,28,28,77,67,49,33,31,279",
	"B igo,1283637600000",
	"L igo,1283637600000",
}
