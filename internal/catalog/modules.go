package catalog

var modules = []Module{
	{
		ID:          "1",
		Title:       "Introduction to Disaster Management",
		Description: "Learn the fundamentals of disaster management and why preparedness is crucial for everyone.",
		VideoID:     "FVwvbS-0q18",
		Duration:    "5:53",
		GameType:    GameDragDrop,
		Quiz: []QuizQuestion{
			{
				ID:       "1-1",
				Question: "What is the primary goal of disaster management?",
				Type:     QuestionMultipleChoice,
				Options: []string{
					"To predict all disasters",
					"To reduce risks and minimize impacts",
					"To completely prevent disasters",
					"To rebuild after disasters",
				},
				CorrectAnswer: "To reduce risks and minimize impacts",
				Explanation:   "Disaster management focuses on reducing risks and minimizing impacts through preparedness, response, and recovery.",
			},
			{
				ID:            "1-2",
				Question:      "India has a high disaster vulnerability index.",
				Type:          QuestionTrueFalse,
				CorrectAnswer: "true",
				Explanation:   "India is highly vulnerable to various natural disasters due to its geographical location and climate conditions.",
			},
			{
				ID:            "1-3",
				Question:      "Which phase comes first in disaster management?",
				Type:          QuestionMultipleChoice,
				Options:       []string{"Response", "Recovery", "Preparedness", "Mitigation"},
				CorrectAnswer: "Mitigation",
				Explanation:   "Mitigation is the first phase, focused on reducing or eliminating disaster risks before they occur.",
			},
		},
	},
	{
		ID:          "2",
		Title:       "Earthquake Safety 101",
		Description: "Understanding earthquakes, their causes, and immediate safety responses.",
		VideoID:     "MllUVQM3KVk",
		Duration:    "5:54",
		GameType:    GameSimulation,
		Quiz: []QuizQuestion{
			{
				ID:       "2-1",
				Question: "During an earthquake, what should you do first?",
				Type:     QuestionMultipleChoice,
				Options: []string{
					"Run outside immediately",
					"Drop, Cover, and Hold On",
					"Stand in a doorway",
					"Hide under a bed",
				},
				CorrectAnswer: "Drop, Cover, and Hold On",
			},
			{
				ID:            "2-2",
				Question:      "The \"Triangle of Life\" theory is recommended for earthquake safety.",
				Type:          QuestionTrueFalse,
				CorrectAnswer: "false",
			},
			{
				ID:       "2-3",
				Question: "If you are outdoors during an earthquake, you should:",
				Type:     QuestionMultipleChoice,
				Options: []string{
					"Run to the nearest building",
					"Stay away from buildings, trees, and power lines",
					"Lie flat on the ground",
					"Find a car to hide under",
				},
				CorrectAnswer: "Stay away from buildings, trees, and power lines",
			},
		},
	},
	{
		ID:          "3",
		Title:       "Earthquake Recovery",
		Description: "Post-earthquake procedures, aftershock preparedness, and recovery steps.",
		VideoID:     "BLEPakj1YTY",
		Duration:    "3:38",
		GameType:    GameMemoryMatch,
		Quiz: []QuizQuestion{
			{
				ID:       "3-1",
				Question: "After an earthquake stops, what should you check first?",
				Type:     QuestionMultipleChoice,
				Options: []string{
					"Your phone for messages",
					"Yourself and others for injuries",
					"The TV for news",
					"Your valuables",
				},
				CorrectAnswer: "Yourself and others for injuries",
			},
			{
				ID:            "3-2",
				Question:      "Aftershocks are always weaker than the main earthquake.",
				Type:          QuestionTrueFalse,
				CorrectAnswer: "false",
			},
			{
				ID:       "3-3",
				Question: "If you smell gas after an earthquake, what should you do?",
				Type:     QuestionMultipleChoice,
				Options: []string{
					"Turn on the lights to check",
					"Light a match to see",
					"Turn off the main gas valve",
					"Call the gas company from inside",
				},
				CorrectAnswer: "Turn off the main gas valve",
			},
		},
	},
	{
		ID:          "4",
		Title:       "Flood Preparedness",
		Description: "Understanding flood types, early warning signs, and preparation strategies.",
		VideoID:     "pi_nUPcQz_A",
		Duration:    "9:15",
		GameType:    GameMaze,
		Quiz: []QuizQuestion{
			{
				ID:            "4-1",
				Question:      "How much water can knock you down while walking?",
				Type:          QuestionMultipleChoice,
				Options:       []string{"2 inches", "6 inches", "12 inches", "18 inches"},
				CorrectAnswer: "6 inches",
			},
			{
				ID:       "4-2",
				Question: "A \"Flash Flood\" is dangerous because:",
				Type:     QuestionMultipleChoice,
				Options: []string{
					"It happens very slowly",
					"It only happens at night",
					"It occurs within 6 hours of rain",
					"It involves clean water",
				},
				CorrectAnswer: "It occurs within 6 hours of rain",
			},
			{
				ID:            "4-3",
				Question:      "What is the safest place to be during a flood?",
				Type:          QuestionMultipleChoice,
				Options:       []string{"In a car", "In the basement", "On high ground", "Near a river bank"},
				CorrectAnswer: "On high ground",
			},
		},
	},
	{
		ID:          "5",
		Title:       "Flood Safety & Rescue",
		Description: "Advanced flood safety, rescue procedures, and post-flood recovery.",
		VideoID:     "43M5mZuzHF8",
		Duration:    "8:00",
		GameType:    GameDragDrop,
		Quiz: []QuizQuestion{
			{
				ID:       "5-1",
				Question: "If trapped in a building during a flood, you should:",
				Type:     QuestionMultipleChoice,
				Options: []string{
					"Go to the basement",
					"Go to the highest floor",
					"Stay on the ground floor",
					"Go outside",
				},
				CorrectAnswer: "Go to the highest floor",
			},
			{
				ID:       "5-2",
				Question: "Why should you avoid driving through floodwater?",
				Type:     QuestionMultipleChoice,
				Options: []string{
					"It ruins the car paint",
					"Provide better traction",
					"2 feet of water can float a car",
					"The water is cold",
				},
				CorrectAnswer: "2 feet of water can float a car",
			},
			{
				ID:            "5-3",
				Question:      "Floodwater is often contaminated with sewage and chemicals.",
				Type:          QuestionTrueFalse,
				CorrectAnswer: "true",
			},
		},
	},
	{
		ID:          "6",
		Title:       "Fire Safety Basics",
		Description: "Fire safety, prevention, evacuation procedures, and firefighting basics.",
		VideoID:     "6qH6fjLxgrU",
		Duration:    "7:30",
		GameType:    GameSimulation,
		Quiz: []QuizQuestion{
			{
				ID:            "6-1",
				Question:      "What number do you call for Fire Department in India?",
				Type:          QuestionMultipleChoice,
				Options:       []string{"100", "101", "102", "108"},
				CorrectAnswer: "101",
			},
			{
				ID:       "6-2",
				Question: "If your clothes catch fire, what should you do?",
				Type:     QuestionMultipleChoice,
				Options: []string{
					"Run fast",
					"Stop, Drop, and Roll",
					"Wave your arms",
					"Pour water on yourself immediately",
				},
				CorrectAnswer: "Stop, Drop, and Roll",
			},
			{
				ID:            "6-3",
				Question:      "How often should you test your smoke alarms?",
				Type:          QuestionMultipleChoice,
				Options:       []string{"Every month", "Every year", "Never", "Every 5 years"},
				CorrectAnswer: "Every month",
			},
		},
	},
	{
		ID:          "7",
		Title:       "Landslide Awareness",
		Description: "Understanding landslide risks, warning signs, and safety measures.",
		VideoID:     "krJLnXpemtQ",
		Duration:    "6:45",
		GameType:    GameMemoryMatch,
		Quiz: []QuizQuestion{
			{
				ID:            "7-1",
				Question:      "Landslides are most common during:",
				Type:          QuestionMultipleChoice,
				Options:       []string{"Dry seasons", "Heavy rainfall", "Winter", "Full moon"},
				CorrectAnswer: "Heavy rainfall",
			},
			{
				ID:       "7-2",
				Question: "Which is a warning sign of an impending landslide?",
				Type:     QuestionMultipleChoice,
				Options: []string{
					"Clear blue skies",
					"Doors or windows sticking",
					"Dry soil",
					"Birds singing",
				},
				CorrectAnswer: "Doors or windows sticking",
			},
			{
				ID:       "7-3",
				Question: "If you are caught in a landslide and cannot escape, you should:",
				Type:     QuestionMultipleChoice,
				Options: []string{
					"Stand still",
					"Curl into a ball and protect your head",
					"Climb a tree",
					"Run uphill",
				},
				CorrectAnswer: "Curl into a ball and protect your head",
			},
		},
	},
	{
		ID:          "8",
		Title:       "Hurricane Preparedness",
		Description: "Hurricane preparedness, safety during storms, and post-hurricane actions.",
		VideoID:     "xHRbnuB9F1I",
		Duration:    "8:20",
		GameType:    GameDragDrop,
		Quiz: []QuizQuestion{
			{
				ID:            "8-1",
				Question:      "The eye of a hurricane is:",
				Type:          QuestionMultipleChoice,
				Options:       []string{"Dangerous", "Calm", "Fast", "Cold"},
				CorrectAnswer: "Calm",
			},
			{
				ID:       "8-2",
				Question: "Boarding up windows prevents:",
				Type:     QuestionMultipleChoice,
				Options: []string{
					"Rain from entering",
					"Shattered glass from flying debris",
					"Sunlight from entering",
					"Noise",
				},
				CorrectAnswer: "Shattered glass from flying debris",
			},
			{
				ID:       "8-3",
				Question: "What is a \"Storm Surge\"?",
				Type:     QuestionMultipleChoice,
				Options: []string{
					"A sudden rainstorm",
					"High winds",
					"Abnormal rise of water generated by a storm",
					"Thunder",
				},
				CorrectAnswer: "Abnormal rise of water generated by a storm",
			},
		},
	},
	{
		ID:          "9",
		Title:       "Forest Fire Safety",
		Description: "Forest fire behavior, prevention, evacuation, and firefighting support.",
		VideoID:     "_bNLtjHG9dM",
		Duration:    "7:10",
		GameType:    GameMaze,
		Quiz: []QuizQuestion{
			{
				ID:            "9-1",
				Question:      "Most forest fires are caused by:",
				Type:          QuestionMultipleChoice,
				Options:       []string{"Lightning", "Human activities", "Animals", "Sun"},
				CorrectAnswer: "Human activities",
			},
			{
				ID:       "9-2",
				Question: "To prevent forest fires, you should NEVER:",
				Type:     QuestionMultipleChoice,
				Options: []string{
					"Camp in the forest",
					"Leave a campfire unattended",
					"Hike on trails",
					"Pick flowers",
				},
				CorrectAnswer: "Leave a campfire unattended",
			},
			{
				ID:       "9-3",
				Question: "If trapped by a forest fire, you should seek:",
				Type:     QuestionMultipleChoice,
				Options: []string{
					"Thick bushes",
					"A bare area like a clearing or road",
					"The top of a hill",
					"A pile of leaves",
				},
				CorrectAnswer: "A bare area like a clearing or road",
			},
		},
	},
	{
		ID:          "10",
		Title:       "Course Conclusion",
		Description: "Course summary and continuing your disaster preparedness journey.",
		VideoID:     "OGWxPR5V-5U",
		Duration:    "9:00",
		GameType:    GameMemoryMatch,
		Quiz: []QuizQuestion{
			{
				ID:            "10-1",
				Question:      "Most important aspect of DM is:",
				Type:          QuestionMultipleChoice,
				Options:       []string{"Equipment", "Knowledge", "Location", "Insurance"},
				CorrectAnswer: "Knowledge",
			},
			{
				ID:       "10-2",
				Question: "Who is responsible for disaster preparedness?",
				Type:     QuestionMultipleChoice,
				Options: []string{
					"Only the government",
					"Only firefighters",
					"Everyone, including you",
					"Only doctors",
				},
				CorrectAnswer: "Everyone, including you",
			},
			{
				ID:       "10-3",
				Question: "What should be in your \"Go Bag\"?",
				Type:     QuestionMultipleChoice,
				Options: []string{
					"Video games",
					"Essential supplies like water and first aid",
					"School books",
					"Kitchen appliances",
				},
				CorrectAnswer: "Essential supplies like water and first aid",
			},
		},
	},
}
