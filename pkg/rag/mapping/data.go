package mapping

// Static IPC -> BNS cross-reference, keyed by canonical IPC section number.
// Definitional section numbers redirect to the canonical punishment entry via
// ipcAliases (e.g. 415 defines cheating, 420 carries the punishment).
var ipcBnsEntries = map[string]*SectionMapping{
	"420": {
		Title:      "Cheating and dishonestly inducing delivery of property",
		IPCSection: "420",
		BNSSection: "318",
		Meaning:    "Whoever cheats and thereby dishonestly induces the person deceived to deliver any property to any person, or to make, alter or destroy the whole or any part of a valuable security.",
		Punishment: "Imprisonment up to seven years, and fine.",
		KeyChanges: "Substantially similar, but renumbered under the new code as Section 318(4).",
	},
	"302": {
		Title:      "Punishment for murder",
		IPCSection: "302",
		BNSSection: "101",
		Meaning:    "Whoever commits murder shall be punished with death, or imprisonment for life, and shall also be liable to fine.",
		Punishment: "Death, or imprisonment for life, and fine.",
		KeyChanges: "Moved from Section 302 to Section 101.",
	},
	"307": {
		Title:      "Attempt to murder",
		IPCSection: "307",
		BNSSection: "109",
		Meaning:    "Whoever does any act with such intention or knowledge, and under such circumstances that, if he by that act caused death, he would be guilty of murder.",
		Punishment: "Imprisonment up to ten years and fine; imprisonment for life if hurt is caused.",
		KeyChanges: "Renumbered to Section 109.",
	},
	"375": {
		Title:      "Rape",
		IPCSection: "375/376",
		BNSSection: "63/64",
		Meaning:    "A man is said to commit rape who has sexual intercourse with a woman under circumstances falling under any of the listed descriptions.",
		Punishment: "Rigorous imprisonment of not less than ten years, which may extend to imprisonment for life, and fine.",
		KeyChanges: "Moved to Chapter V (Offences against Women and Children). Definition in Section 63, punishment in Section 64.",
	},
	"124A": {
		Title:      "Sedition / Acts endangering sovereignty",
		IPCSection: "124A",
		BNSSection: "150",
		Meaning:    "Whoever by words, signs, visible representation, electronic communication or use of financial means excites or attempts to excite secession, armed rebellion or subversive activities.",
		Punishment: "Imprisonment for life, or imprisonment up to seven years, and fine.",
		KeyChanges: "Word 'Sedition' removed. Expanded to include electronic communication and financial means.",
	},
	"143": {
		Title:      "Unlawful assembly",
		IPCSection: "143",
		BNSSection: "189",
		Meaning:    "Whoever is a member of an unlawful assembly shall be punished with imprisonment of either description for a term which may extend to six months, or with fine, or with both.",
		Punishment: "Imprisonment up to six months, or fine, or both.",
		KeyChanges: "Renumbered to Section 189.",
	},
	"304B": {
		Title:      "Dowry death",
		IPCSection: "304B",
		BNSSection: "80",
		Meaning:    "Where the death of a woman is caused by burns or bodily injury within seven years of her marriage and she was subjected to cruelty or harassment for dowry, such death is called dowry death.",
		Punishment: "Imprisonment of not less than seven years, which may extend to imprisonment for life.",
		KeyChanges: "Renumbered to Section 80; substance unchanged.",
	},
	"498A": {
		Title:      "Cruelty by husband or relatives of husband",
		IPCSection: "498A",
		BNSSection: "85-86",
		Meaning:    "Whoever, being the husband or the relative of the husband of a woman, subjects such woman to cruelty.",
		Punishment: "Imprisonment up to three years, and fine.",
		KeyChanges: "Split across Sections 85 and 86; cruelty is defined separately in Section 86.",
	},
	"379": {
		Title:      "Punishment for theft",
		IPCSection: "379",
		BNSSection: "303",
		Meaning:    "Whoever intends to take dishonestly any movable property out of the possession of any person without that person's consent commits theft.",
		Punishment: "Imprisonment up to three years, or fine, or both.",
		KeyChanges: "Renumbered to Section 303(2); adds community service for petty theft under Rs. 5000.",
	},
}

// ipcAliases maps definitional section numbers to the canonical entry key.
var ipcAliases = map[string]string{
	"415": "420", // cheating defined
	"300": "302", // murder defined
	"376": "375", // punishment for rape, same entry
	"378": "379", // theft defined
}
