package ai

// agmscHandbook is the handbook excerpt supplied as context when
// generating a plan. It is the table of contents of the AGMSC Handbook
// and Procedures, Rev. 4.0.
const agmscHandbook = `
AGMSC Handbook, Rev. 4.0 |
Page | 1
appalachian
gas measurement
short course
Handbook and Procedures
AGMSC Handbook, Rev. 4.0 |
Contents
Mission Statement.
Members
Section 1- Officers
4
4
5
President/Chief Executive Officer
.5
Vice President / General Committee Chairperson.
.8
Secretary
10
Treasurer
12
Section 2 - Committee Roles and Responsibilities.
13
Program Committee Chairperson
13
Vice Program Chairperson
18
Program Deputy.
20
Assistant Program Deputy
23
Program Deputy: Hands-On & Demonstrations Workshops.....25
Assistant Program Deputy: Hands-On & Demonstrations
Workshops.
28
Publications Chairperson.
30
Exhibits Committee Chairperson
32
Publicity Committee Chairperson
34
On-Site Catering Committee Chairperson
.36
Budget & Finance Committee Chairperson
38
Audit Committee Chairperson.
39
Registration Committee Chairperson.
.40
General Committee Member
42
IMPORTANT DATES FOR AGMSC PUBLICATIONS
Section 3 Instructions to Lecture Authors..
43
44
Section 5- Lecture Monitors.
45
Class Monitor.
.45
Rating Card..
47
Monitor Instructions - Lecture
48
Section 6-Hands-On Demonstration Monitors
49
Monitor Instructions - Hands-On Workshops
.49
Section 7 - Short Course Checklist
Section 8 - Organizational Chart.
Section 9- Past Presidents
Section 10-Templates, Sample Letters and Word Picture Submission Form..
Section 11 - Robert Morris University.
Page | 2
70
AGMSC Handbook, Rev. 4.`
