package dailytips

import "github.com/vitalink/wellness-backend/internal/domain/vitals"

// The static catalog backs two things: the non-personalized
// recommendations-by-risk-level endpoint and the deterministic fallback tier
// used when the external generator is unavailable. It lives in code so the
// fallback tier cannot fail.

// FallbackFor groups the catalog entries for a risk level by category,
// keeping catalog order and capping each category at MaxTipsPerCategory.
// Unknown or empty risk levels yield an empty mapping.
func FallbackFor(risk vitals.RiskLevel) TipsByCategory {
	entries := catalog[risk]
	if len(entries) == 0 {
		return TipsByCategory{}
	}
	out := make(TipsByCategory)
	for _, tip := range entries {
		if len(out[tip.Category]) >= MaxTipsPerCategory {
			continue
		}
		out[tip.Category] = append(out[tip.Category], tip)
	}
	return out
}

// ByRiskLevel returns the flat ordered catalog list for a risk level.
func ByRiskLevel(risk vitals.RiskLevel) []Tip {
	entries := catalog[risk]
	out := make([]Tip, len(entries))
	copy(out, entries)
	return out
}

var catalog = map[vitals.RiskLevel][]Tip{
	vitals.RiskLow: {
		{
			Title:            "Keep plates colorful",
			ShortDescription: "Fill half of every plate with vegetables and fruit in at least three colors to keep fiber, potassium and antioxidants steady through the week.",
			LongDescription:  "A varied, plant-forward plate is the easiest way to hold on to a healthy vascular profile. Aim for leafy greens daily, add berries or citrus at breakfast, and rotate legumes in twice a week so cholesterol and blood pressure stay where they are now.",
			Category:         CategoryDiet,
		},
		{
			Title:            "Swap refined grains",
			ShortDescription: "Trade white bread, white rice and sugary cereals for oats, brown rice or whole-grain bread at one meal per day.",
			LongDescription:  "Whole grains digest slowly, which keeps blood sugar and triglycerides flatter across the day. Start with the meal where the swap is easiest, usually breakfast, and build from there; within a month the change stops feeling like a change at all.",
			Category:         CategoryDiet,
		},
		{
			Title:            "Salt awareness",
			ShortDescription: "Check sodium on packaged foods and keep most items under 400 mg per serving to protect the blood pressure you already have.",
			LongDescription:  "Even with healthy readings, most sodium arrives hidden in sauces, breads and deli items rather than the salt shaker. Reading labels once per shop and cooking one extra meal at home each week keeps your daily total near the recommended 2,000 mg.",
			Category:         CategoryDiet,
		},
		{
			Title:            "Hold your 150 minutes",
			ShortDescription: "Keep at least 150 minutes of moderate activity per week, spread over four or more days, to maintain your current vascular fitness.",
			LongDescription:  "Consistency beats intensity for long-term vessel health. Brisk walking, cycling or swimming in 30-minute blocks keeps the endothelium responsive. Schedule the sessions like appointments and protect two of them as non-negotiable, even in busy weeks.",
			Category:         CategoryExercise,
		},
		{
			Title:            "Add two strength days",
			ShortDescription: "Twice a week, spend 20 minutes on squats, push-ups, rows and planks to preserve muscle that supports healthy metabolism.",
			LongDescription:  "Muscle tissue buffers blood sugar and supports resting metabolic rate, both of which protect arteries over decades. Body-weight work at home counts; pick four movements, do three sets of each, and increase repetitions gradually as they get easy.",
			Category:         CategoryExercise,
		},
		{
			Title:            "Break up sitting",
			ShortDescription: "Stand or walk for two to three minutes every hour of desk time to keep circulation active through the workday.",
			LongDescription:  "Long uninterrupted sitting stiffens vessels even in people who train regularly. A short hourly break, walking to refill water or doing a flight of stairs, restores blood flow in the legs and keeps your training gains working all day rather than one hour a day.",
			Category:         CategoryExercise,
		},
		{
			Title:            "Guard a steady bedtime",
			ShortDescription: "Keep bedtime and wake time within the same hour every day, including weekends, to protect restorative deep sleep.",
			LongDescription:  "A stable schedule anchors your circadian rhythm, which regulates nighttime blood pressure dipping. Pick a realistic window you can hold seven days a week, dim lights in the final hour, and let the consistency, not the total, do the heavy lifting.",
			Category:         CategorySleep,
		},
		{
			Title:            "Screens off, room cool",
			ShortDescription: "End screen use 30 minutes before bed and keep the bedroom near 18 degrees for faster, deeper sleep onset.",
			LongDescription:  "Evening light delays melatonin and a warm room fragments deep sleep, the phase where the cardiovascular system recovers. Replace the last scroll with reading or stretching, crack a window or drop the thermostat, and mornings will feel noticeably different.",
			Category:         CategorySleep,
		},
		{
			Title:            "Morning light first",
			ShortDescription: "Get ten minutes of outdoor daylight within an hour of waking to anchor your body clock and evening sleepiness.",
			LongDescription:  "Morning light is the strongest signal your circadian system receives. Taking coffee outside or walking the first block of your commute sets up earlier melatonin release at night, which makes the steady bedtime you are protecting much easier to hit.",
			Category:         CategorySleep,
		},
		{
			Title:            "Two-minute resets",
			ShortDescription: "Use slow breathing, four seconds in and six out, for two minutes whenever you notice tension building during the day.",
			LongDescription:  "Extended exhales activate the parasympathetic system and drop heart rate within a few breaths. Practicing during minor stress builds the reflex you will want during major stress, and it keeps cortisol from quietly working against your healthy numbers.",
			Category:         CategoryStress,
		},
		{
			Title:            "Protect one offline hour",
			ShortDescription: "Reserve one hour daily without news or notifications for a hobby, a walk or people you enjoy being around.",
			LongDescription:  "Chronic low-grade alertness keeps stress hormones elevated even when nothing is wrong. A predictable offline hour gives your nervous system a daily floor of recovery, and the habit is easier to keep when it is tied to something you genuinely look forward to.",
			Category:         CategoryStress,
		},
		{
			Title:            "Name it to tame it",
			ShortDescription: "When stressed, write down the specific worry in one sentence; naming it reliably shrinks its physical footprint.",
			LongDescription:  "Vague stress keeps the body braced. Putting the concern into one concrete sentence moves processing from alarm circuits to planning circuits, lowering heart rate and muscle tension. Keep a note on your phone and review it weekly; most items resolve themselves.",
			Category:         CategoryStress,
		},
	},
	vitals.RiskModerate: {
		{
			Title:            "Halve added sugar",
			ShortDescription: "Cut sugary drinks and desserts to half your current amount this week, replacing them with water, fruit or unsweetened alternatives.",
			LongDescription:  "Added sugar drives triglycerides and inflammation, two of the levers behind a moderate risk score. Halving rather than quitting keeps the change sustainable; most people stop missing the removed half within two weeks and can then halve again.",
			Category:         CategoryDiet,
		},
		{
			Title:            "Oily fish twice weekly",
			ShortDescription: "Eat salmon, sardines or mackerel twice a week to bring omega-3 fats that support vessel flexibility and lower triglycerides.",
			LongDescription:  "Marine omega-3s improve endothelial function and modestly lower blood pressure, which matters most at your risk level. Canned sardines and frozen salmon are inexpensive and quick; if fish is truly not an option, discuss a supplement at your next review.",
			Category:         CategoryDiet,
		},
		{
			Title:            "Front-load your day",
			ShortDescription: "Make breakfast and lunch your larger meals and keep dinner light to ease overnight blood pressure and glucose.",
			LongDescription:  "Late heavy meals raise overnight glucose and blunt the nighttime blood pressure dip that protects arteries. Shifting calories earlier, with a protein-rich breakfast and a lighter evening plate, improves both without changing what you eat at all.",
			Category:         CategoryDiet,
		},
		{
			Title:            "Walk after meals",
			ShortDescription: "Take a ten-minute walk after your two largest meals to blunt glucose spikes and add painless activity minutes.",
			LongDescription:  "Working muscles clear glucose without insulin, so a short post-meal walk flattens the spikes that stress vessel walls. Twenty daily minutes gathered this way also counts toward your weekly activity target and is easy to keep up in any weather with a fallback indoor loop.",
			Category:         CategoryExercise,
		},
		{
			Title:            "Build to brisk",
			ShortDescription: "During walks, add two-minute brisk intervals where talking becomes effortful, building from four to eight intervals over a month.",
			LongDescription:  "Interval-style walking improves cardiovascular fitness faster than steady pace and is gentle enough to start at a moderate risk level. Use lampposts or songs as markers, recover fully between efforts, and let the brisk share grow gradually week by week.",
			Category:         CategoryExercise,
		},
		{
			Title:            "Strength twice a week",
			ShortDescription: "Do two weekly 20-minute sessions of basic strength work; improved muscle mass directly improves blood sugar handling.",
			LongDescription:  "Resistance training is underused at moderate risk despite outsized benefits: better glucose disposal, lower resting blood pressure and stronger bones. Start with sit-to-stands, wall push-ups and step-ups, and progress load only when form stays clean.",
			Category:         CategoryExercise,
		},
		{
			Title:            "Set a wind-down alarm",
			ShortDescription: "Set an alarm 45 minutes before bed to start dimming lights, finishing screens and preparing tomorrow, every night.",
			LongDescription:  "Short or irregular sleep raises next-day blood pressure and appetite hormones, quietly feeding a moderate risk profile. An evening alarm outsources the decision to wind down, and the predictable runway typically adds 30 to 45 minutes of actual sleep.",
			Category:         CategorySleep,
		},
		{
			Title:            "Cut late caffeine",
			ShortDescription: "Take your last caffeinated drink before 14:00; afternoon caffeine fragments deep sleep even when you fall asleep fine.",
			LongDescription:  "Caffeine's half-life means a 16:00 coffee is still half-active at 22:00, trimming the deep sleep your cardiovascular system uses to recover. Switch afternoon cups to decaf or herbal tea for two weeks and compare how your mornings feel before deciding.",
			Category:         CategorySleep,
		},
		{
			Title:            "Track snoring",
			ShortDescription: "If you snore loudly or wake unrefreshed, note it for a week and raise it at your next appointment; it is worth checking.",
			LongDescription:  "Sleep apnea is common at moderate vascular risk and treating it improves blood pressure more than many medications. A week of simple notes, snoring, gasping, morning headaches, daytime sleepiness, gives your clinician enough to decide whether testing makes sense.",
			Category:         CategorySleep,
		},
		{
			Title:            "Schedule worry time",
			ShortDescription: "Give worries a fixed 15-minute daily slot; outside it, jot the thought down and return to what you were doing.",
			LongDescription:  "Rumination keeps stress physiology switched on for hours. A scheduled slot trains your brain that concerns will be handled, which lowers ambient tension the rest of the day. Keep the slot out of the evening so it cannot bleed into your wind-down.",
			Category:         CategoryStress,
		},
		{
			Title:            "Move stress, don't hold it",
			ShortDescription: "After a stressful event, take five minutes of brisk movement, stairs, a fast walk, to burn off the mobilized energy.",
			LongDescription:  "Stress readies the body to move; sitting still with that chemistry keeps blood pressure and glucose elevated longer. A short burst of activity metabolizes the response the way it was designed to end, and doubles as extra exercise minutes toward your weekly total.",
			Category:         CategoryStress,
		},
		{
			Title:            "One recovery anchor",
			ShortDescription: "Choose one daily recovery anchor, ten minutes of stretching, a bath, prayer or meditation, and keep it at the same time.",
			LongDescription:  "At moderate risk the goal is a reliable daily counterweight to accumulated stress, not occasional grand gestures. Anchoring a small practice to an existing habit, right after dinner or before your alarm, makes it automatic within weeks and measurably steadies heart rate variability.",
			Category:         CategoryStress,
		},
	},
	vitals.RiskHigh: {
		{
			Title:            "Sodium under 1,500 mg",
			ShortDescription: "Keep daily sodium under 1,500 mg: cook at home more, rinse canned goods, and season with herbs, citrus and spices instead.",
			LongDescription:  "At high vascular risk, sodium reduction is one of the fastest non-drug ways to lower blood pressure, often within two weeks. Most intake hides in bread, processed meat and restaurant food, so plan simple home-cooked defaults for the meals you repeat most.",
			Category:         CategoryDiet,
		},
		{
			Title:            "Adopt the DASH pattern",
			ShortDescription: "Build meals on vegetables, fruit, beans, whole grains and low-fat dairy, the eating pattern with the strongest blood pressure evidence.",
			LongDescription:  "The DASH pattern lowers systolic pressure comparably to a first-line medication when followed consistently. Start by standardizing breakfast, oats with fruit and yogurt, then template lunches around beans or lentils; two fixed meals do most of the work.",
			Category:         CategoryDiet,
		},
		{
			Title:            "Alcohol: set a ceiling",
			ShortDescription: "Cap alcohol at one drink per day or less, with at least three alcohol-free days; at your level this directly lowers pressure.",
			LongDescription:  "Alcohol raises blood pressure in a dose-dependent way and disrupts the overnight recovery your vessels need most right now. Decide the ceiling in advance, stock alternatives you actually like, and treat the alcohol-free days as fixed as any medication schedule.",
			Category:         CategoryDiet,
		},
		{
			Title:            "Daily gentle walks",
			ShortDescription: "Walk 20 to 30 minutes at a comfortable pace every day; at high risk, daily gentle movement beats occasional hard sessions.",
			LongDescription:  "Regular easy walking lowers resting blood pressure and improves endothelial function without spiking cardiac load. Keep a pace where full sentences are easy, flat routes at first, and treat the daily slot as protected time; intensity can wait until your numbers improve.",
			Category:         CategoryExercise,
		},
		{
			Title:            "Avoid breath-holding strain",
			ShortDescription: "Skip heavy lifts and any exercise where you strain while holding your breath; choose lighter weights with steady breathing.",
			LongDescription:  "Breath-held straining causes sharp blood pressure surges that are unwise at high risk. You can still strength train safely: lighter loads, higher repetitions, exhaling on effort, and resting fully between sets. Ask for clearance before adding intensity.",
			Category:         CategoryExercise,
		},
		{
			Title:            "Move every half hour",
			ShortDescription: "Stand and move for two minutes every 30 minutes of sitting; frequent interruption matters more at elevated risk.",
			LongDescription:  "At high vascular risk, prolonged sitting measurably raises blood pressure and impairs leg circulation within a single afternoon. A timer-driven two-minute break, marching in place is enough, keeps vessels active and splits your day into safer segments.",
			Category:         CategoryExercise,
		},
		{
			Title:            "Prioritize 7 to 8 hours",
			ShortDescription: "Protect a full 7 to 8 hours in bed nightly; at your risk level sleep debt shows up directly in morning blood pressure.",
			LongDescription:  "Short sleep elevates next-morning pressure and stress hormones, compounding existing risk. Work backward from your wake time, set a bedtime that allows 8 hours in bed, and hold it for three weeks; this single change often moves readings more than expected.",
			Category:         CategorySleep,
		},
		{
			Title:            "Left side, head raised",
			ShortDescription: "If reflux or breathlessness disturbs your nights, try sleeping on your left side with the head of the bed slightly raised.",
			LongDescription:  "Position changes are a simple, drug-free way to reduce nighttime awakenings that fragment recovery sleep. A wedge pillow or raised bed head eases reflux and breathing effort; fewer awakenings mean better nighttime blood pressure dipping, which your vessels need.",
			Category:         CategorySleep,
		},
		{
			Title:            "Discuss a sleep study",
			ShortDescription: "Ask your clinician about sleep apnea screening; at high vascular risk, untreated apnea can undo other improvements.",
			LongDescription:  "Apnea is strongly over-represented in high-risk vascular profiles and treating it lowers blood pressure, improves rhythm stability and restores daytime energy. Home testing is now simple; bring a week of sleep notes to your next appointment to start the conversation.",
			Category:         CategorySleep,
		},
		{
			Title:            "Daily 10-minute practice",
			ShortDescription: "Do ten minutes of guided slow breathing or meditation daily; at your level it produces measurable blood pressure reduction.",
			LongDescription:  "Slow-paced breathing near six breaths per minute has trial evidence for lowering systolic pressure at high risk. Use any free guided track, same time daily, seated and unhurried. Treat it like a prescription: the effect builds over weeks of consistent practice.",
			Category:         CategoryStress,
		},
		{
			Title:            "Reduce one commitment",
			ShortDescription: "Pick one recurring obligation that drains you and step back from it this month; load reduction is treatment right now.",
			LongDescription:  "Chronic overload keeps stress hormones high enough to counteract diet and exercise gains. Choose the commitment with the worst effort-to-value ratio and hand it off, pause it or shrink it. Protecting capacity is not a luxury at high vascular risk; it is part of the plan.",
			Category:         CategoryStress,
		},
		{
			Title:            "Stay connected",
			ShortDescription: "Arrange contact with someone supportive at least twice a week, a call, a walk or a meal; isolation raises vascular risk.",
			LongDescription:  "Social connection buffers the physiological stress response and is independently associated with better cardiovascular outcomes. Put two touchpoints in the calendar rather than leaving them to chance, and where possible pair them with a walk so body and mood benefit together.",
			Category:         CategoryStress,
		},
	},
}
